package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"vestra/contexts/identity-access/access-policy/domain/entities"
	domainerrors "vestra/contexts/identity-access/access-policy/domain/errors"
	"vestra/contexts/identity-access/access-policy/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"

	pgUniqueViolation = "23505"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type membershipModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Identity  string    `gorm:"column:identity;uniqueIndex:idx_access_identity_role;size:255"`
	Role      string    `gorm:"column:role;uniqueIndex:idx_access_identity_role;size:64"`
	GrantedBy string    `gorm:"column:granted_by;size:255"`
	GrantedAt time.Time `gorm:"column:granted_at"`
}

func (membershipModel) TableName() string { return "access_roles" }

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey;size:64"`
	EventType   string     `gorm:"column:event_type;size:128"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status;size:16;index"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "access_outbox" }

// EnsureBootstrapAdmin installs the sole bootstrap administrator when the
// role table holds no administrators yet.
func (r *Repository) EnsureBootstrapAdmin(ctx context.Context, adminID string) error {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return domainerrors.ErrInvalidIdentity
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&membershipModel{}).
		Where("role = ?", entities.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&membershipModel{
		Identity:  adminID,
		Role:      entities.RoleAdmin,
		GrantedBy: adminID,
		GrantedAt: time.Now().UTC(),
	}).Error
}

func (r *Repository) IsMember(ctx context.Context, identity string, role string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&membershipModel{}).
		Where("identity = ? AND role = ?", strings.TrimSpace(identity), role).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ListMemberships(ctx context.Context, identity string) ([]entities.Membership, error) {
	var rows []membershipModel
	err := r.db.WithContext(ctx).
		Where("identity = ?", strings.TrimSpace(identity)).
		Order("role ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Membership, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.Membership{
			Identity:  row.Identity,
			Role:      row.Role,
			GrantedBy: row.GrantedBy,
			GrantedAt: row.GrantedAt.UTC().Unix(),
		})
	}
	return items, nil
}

func (r *Repository) Grant(ctx context.Context, input ports.GrantInput) (bool, error) {
	identity := strings.TrimSpace(input.Identity)
	if identity == "" {
		return false, domainerrors.ErrInvalidIdentity
	}
	err := r.db.WithContext(ctx).Create(&membershipModel{
		Identity:  identity,
		Role:      input.Role,
		GrantedBy: input.ActorID,
		GrantedAt: input.GrantedAt.UTC(),
	}).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repository) Revoke(ctx context.Context, input ports.RevokeInput) (bool, error) {
	identity := strings.TrimSpace(input.Identity)
	if identity == "" {
		return false, domainerrors.ErrInvalidIdentity
	}
	result := r.db.WithContext(ctx).
		Where("identity = ? AND role = ?", identity, input.Role).
		Delete(&membershipModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&outboxModel{
		OutboxID:  envelope.EventID,
		EventType: envelope.EventType,
		Payload:   payload,
		Status:    outboxStatusPending,
		CreatedAt: envelope.OccurredAt.UTC(),
	}).Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:  row.OutboxID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	ts := publishedAt.UTC()
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": &ts,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
