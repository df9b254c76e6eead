package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"vestra/contexts/identity-access/access-policy/domain/entities"
	domainerrors "vestra/contexts/identity-access/access-policy/domain/errors"
	"vestra/contexts/identity-access/access-policy/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing repository/cache/outbox ports.
// It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	memberships map[string]entities.Membership
	cache       map[string]cacheEntry
	outbox      map[string]outboxRow
}

type cacheEntry struct {
	Roles     []string
	ExpiresAt time.Time
}

type outboxRow struct {
	ports.OutboxMessage
	Status      string
	PublishedAt *time.Time
}

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

// NewStore builds an in-memory adapter with exactly one bootstrap
// administrator; no other role is pre-populated.
func NewStore(bootstrapAdminID string) *Store {
	s := &Store{
		memberships: make(map[string]entities.Membership),
		cache:       make(map[string]cacheEntry),
		outbox:      make(map[string]outboxRow),
	}
	admin := strings.TrimSpace(bootstrapAdminID)
	if admin != "" {
		s.memberships[membershipKey(admin, entities.RoleAdmin)] = entities.Membership{
			Identity:  admin,
			Role:      entities.RoleAdmin,
			GrantedBy: admin,
			GrantedAt: time.Now().UTC().Unix(),
		}
	}
	return s
}

func (s *Store) IsMember(_ context.Context, identity string, role string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.memberships[membershipKey(strings.TrimSpace(identity), role)]
	return ok, nil
}

func (s *Store) ListMemberships(_ context.Context, identity string) ([]entities.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identity = strings.TrimSpace(identity)
	items := make([]entities.Membership, 0, 2)
	for _, membership := range s.memberships {
		if membership.Identity == identity {
			items = append(items, membership)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Role < items[j].Role
	})
	return items, nil
}

func (s *Store) Grant(_ context.Context, input ports.GrantInput) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity := strings.TrimSpace(input.Identity)
	if identity == "" {
		return false, domainerrors.ErrInvalidIdentity
	}
	key := membershipKey(identity, input.Role)
	if _, exists := s.memberships[key]; exists {
		return false, nil
	}
	s.memberships[key] = entities.Membership{
		Identity:  identity,
		Role:      input.Role,
		GrantedBy: input.ActorID,
		GrantedAt: input.GrantedAt.UTC().Unix(),
	}
	return true, nil
}

func (s *Store) Revoke(_ context.Context, input ports.RevokeInput) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity := strings.TrimSpace(input.Identity)
	if identity == "" {
		return false, domainerrors.ErrInvalidIdentity
	}
	key := membershipKey(identity, input.Role)
	if _, exists := s.memberships[key]; !exists {
		return false, nil
	}
	delete(s.memberships, key)
	return true, nil
}

func (s *Store) Get(_ context.Context, identity string, now time.Time) ([]string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[strings.TrimSpace(identity)]
	if !ok {
		return nil, false, nil
	}
	if !entry.ExpiresAt.After(now.UTC()) {
		delete(s.cache, strings.TrimSpace(identity))
		return nil, false, nil
	}
	return append([]string(nil), entry.Roles...), true, nil
}

func (s *Store) Set(_ context.Context, identity string, roles []string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[strings.TrimSpace(identity)] = cacheEntry{
		Roles:     append([]string(nil), roles...),
		ExpiresAt: expiresAt.UTC(),
	}
	return nil
}

func (s *Store) Invalidate(_ context.Context, identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cache, strings.TrimSpace(identity))
	return nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	outboxID := strings.TrimSpace(envelope.EventID)
	if outboxID == "" {
		return domainerrors.ErrInvalidIdentity
	}
	s.outbox[outboxID] = outboxRow{
		OutboxMessage: ports.OutboxMessage{
			OutboxID:  outboxID,
			EventType: envelope.EventType,
			Payload:   payload,
			CreatedAt: envelope.OccurredAt.UTC(),
		},
		Status: outboxStatusPending,
	}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	items := make([]ports.OutboxMessage, 0)
	for _, row := range s.outbox {
		if row.Status == outboxStatusPending {
			items = append(items, row.OutboxMessage)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.outbox[strings.TrimSpace(outboxID)]
	if !ok {
		return domainerrors.ErrNotFound
	}
	ts := publishedAt.UTC()
	row.Status = outboxStatusPublished
	row.PublishedAt = &ts
	s.outbox[strings.TrimSpace(outboxID)] = row
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func membershipKey(identity string, role string) string {
	return identity + "\x00" + role
}
