package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"vestra/contexts/treasury-core/vesting-ledger/domain/entities"
	domainerrors "vestra/contexts/treasury-core/vesting-ledger/domain/errors"
	"vestra/contexts/treasury-core/vesting-ledger/domain/services"
	"vestra/contexts/treasury-core/vesting-ledger/ports"

	"github.com/google/uuid"
)

// Store is the in-memory ledger adapter. One mutex serializes every
// read-compute-write span, which is what makes ApplyDrawDown atomic with
// respect to concurrent drawdowns on the same schedule.
type Store struct {
	mu sync.RWMutex

	schedules []entities.Schedule
	index     map[string][]uint64
	paused    bool
	assets    map[string]struct{}
	outbox    map[string]outboxRow
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

func NewStore() *Store {
	return &Store{
		index:  make(map[string][]uint64),
		assets: make(map[string]struct{}),
		outbox: make(map[string]outboxRow),
	}
}

// AppendSchedule assigns the next sequential id and indexes the beneficiary.
// Ids are never reused; the index records creation order permanently.
func (s *Store) AppendSchedule(_ context.Context, schedule entities.Schedule) (entities.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule.ScheduleID = uint64(len(s.schedules))
	s.schedules = append(s.schedules, schedule)
	s.index[schedule.Beneficiary] = append(s.index[schedule.Beneficiary], schedule.ScheduleID)
	return schedule, nil
}

func (s *Store) GetSchedule(_ context.Context, scheduleID uint64) (entities.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if scheduleID >= uint64(len(s.schedules)) {
		return entities.Schedule{}, domainerrors.ErrScheduleNotFound
	}
	return s.schedules[scheduleID], nil
}

func (s *Store) ScheduleCount(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uint64(len(s.schedules)), nil
}

func (s *Store) ListScheduleIDs(_ context.Context, beneficiary string) ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]uint64(nil), s.index[strings.TrimSpace(beneficiary)]...), nil
}

// ApplyDrawDown performs the atomic read-compute-write drawdown. The
// accounting (TotalDrawn, LastDrawnAt) is mutated here, before any transfer
// is signaled by the caller.
func (s *Store) ApplyDrawDown(_ context.Context, scheduleID uint64, now int64) (ports.DrawDownResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if scheduleID >= uint64(len(s.schedules)) {
		return ports.DrawDownResult{}, domainerrors.ErrScheduleNotFound
	}
	schedule := s.schedules[scheduleID]
	if schedule.TotalAmount == 0 {
		return ports.DrawDownResult{}, domainerrors.ErrScheduleEmpty
	}

	amount := services.Available(schedule, now)
	if amount == 0 {
		return ports.DrawDownResult{}, domainerrors.ErrNothingToWithdraw
	}

	result := ports.DrawDownResult{
		Amount:              amount,
		PreviousTotalDrawn:  schedule.TotalDrawn,
		PreviousLastDrawnAt: schedule.LastDrawnAt,
	}
	schedule.TotalDrawn += amount
	schedule.LastDrawnAt = now
	s.schedules[scheduleID] = schedule
	result.Schedule = schedule
	return result, nil
}

// RestoreDrawDown is the compensation path for a failed transfer.
func (s *Store) RestoreDrawDown(_ context.Context, scheduleID uint64, previousTotalDrawn uint64, previousLastDrawnAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if scheduleID >= uint64(len(s.schedules)) {
		return domainerrors.ErrScheduleNotFound
	}
	schedule := s.schedules[scheduleID]
	schedule.TotalDrawn = previousTotalDrawn
	schedule.LastDrawnAt = previousLastDrawnAt
	s.schedules[scheduleID] = schedule
	return nil
}

func (s *Store) SetPaused(_ context.Context, paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paused = paused
	return nil
}

func (s *Store) IsPaused(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.paused, nil
}

func (s *Store) AddAsset(_ context.Context, asset string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset = strings.TrimSpace(asset)
	if asset == "" {
		return domainerrors.ErrInvalidAsset
	}
	s.assets[asset] = struct{}{}
	return nil
}

func (s *Store) RemoveAsset(_ context.Context, asset string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.assets, strings.TrimSpace(asset))
	return nil
}

func (s *Store) IsAssetAllowed(_ context.Context, asset string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.assets[strings.TrimSpace(asset)]
	return ok, nil
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
		return domainerrors.ErrNotFound
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
