package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"vestra/contexts/treasury-core/vesting-ledger/domain/entities"
	domainerrors "vestra/contexts/treasury-core/vesting-ledger/domain/errors"
	"vestra/contexts/treasury-core/vesting-ledger/domain/services"
	"vestra/contexts/treasury-core/vesting-ledger/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

type scheduleModel struct {
	ScheduleID           uint64 `gorm:"column:schedule_id;primaryKey"`
	Asset                string `gorm:"column:asset;size:255"`
	Beneficiary          string `gorm:"column:beneficiary;size:255;index"`
	Start                int64  `gorm:"column:start_at"`
	End                  int64  `gorm:"column:end_at"`
	Cliff                int64  `gorm:"column:cliff_at"`
	TotalAmount          uint64 `gorm:"column:total_amount"`
	ReleaseRatePerSecond uint64 `gorm:"column:release_rate_per_second"`
	TotalDrawn           uint64 `gorm:"column:total_drawn"`
	LastDrawnAt          int64  `gorm:"column:last_drawn_at"`
}

func (scheduleModel) TableName() string { return "vesting_schedules" }

func (m scheduleModel) toEntity() entities.Schedule {
	return entities.Schedule{
		ScheduleID:           m.ScheduleID,
		Asset:                m.Asset,
		Beneficiary:          m.Beneficiary,
		Start:                m.Start,
		End:                  m.End,
		Cliff:                m.Cliff,
		TotalAmount:          m.TotalAmount,
		ReleaseRatePerSecond: m.ReleaseRatePerSecond,
		TotalDrawn:           m.TotalDrawn,
		LastDrawnAt:          m.LastDrawnAt,
	}
}

// ledgerStateModel is a singleton row. Appends lock it to hand out
// sequential schedule ids; the pause flag lives here as well.
type ledgerStateModel struct {
	ID            uint64 `gorm:"column:id;primaryKey"`
	ScheduleCount uint64 `gorm:"column:schedule_count"`
	Paused        bool   `gorm:"column:paused"`
}

func (ledgerStateModel) TableName() string { return "vesting_ledger_state" }

type assetModel struct {
	Asset string `gorm:"column:asset;primaryKey;size:255"`
}

func (assetModel) TableName() string { return "vesting_assets" }

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey;size:64"`
	EventType   string     `gorm:"column:event_type;size:128"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status;size:16;index"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "vesting_outbox" }

// AppendSchedule assigns the next sequential id inside one transaction. The
// state row is locked so concurrent creations serialize on the counter.
func (r *Repository) AppendSchedule(ctx context.Context, schedule entities.Schedule) (entities.Schedule, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := lockState(tx)
		if err != nil {
			return err
		}
		schedule.ScheduleID = state.ScheduleCount
		if err := tx.Create(&scheduleModel{
			ScheduleID:           schedule.ScheduleID,
			Asset:                schedule.Asset,
			Beneficiary:          schedule.Beneficiary,
			Start:                schedule.Start,
			End:                  schedule.End,
			Cliff:                schedule.Cliff,
			TotalAmount:          schedule.TotalAmount,
			ReleaseRatePerSecond: schedule.ReleaseRatePerSecond,
			TotalDrawn:           schedule.TotalDrawn,
			LastDrawnAt:          schedule.LastDrawnAt,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&ledgerStateModel{}).
			Where("id = ?", state.ID).
			Update("schedule_count", state.ScheduleCount+1).Error
	})
	if err != nil {
		return entities.Schedule{}, err
	}
	return schedule, nil
}

func (r *Repository) GetSchedule(ctx context.Context, scheduleID uint64) (entities.Schedule, error) {
	var row scheduleModel
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Schedule{}, domainerrors.ErrScheduleNotFound
		}
		return entities.Schedule{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ScheduleCount(ctx context.Context) (uint64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&scheduleModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return uint64(count), nil
}

func (r *Repository) ListScheduleIDs(ctx context.Context, beneficiary string) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&scheduleModel{}).
		Where("beneficiary = ?", strings.TrimSpace(beneficiary)).
		Order("schedule_id ASC").
		Pluck("schedule_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ApplyDrawDown locks the schedule row for the whole read-compute-write span.
func (r *Repository) ApplyDrawDown(ctx context.Context, scheduleID uint64, now int64) (ports.DrawDownResult, error) {
	var result ports.DrawDownResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row scheduleModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("schedule_id = ?", scheduleID).
			First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrScheduleNotFound
			}
			return err
		}
		if row.TotalAmount == 0 {
			return domainerrors.ErrScheduleEmpty
		}

		schedule := row.toEntity()
		amount := services.Available(schedule, now)
		if amount == 0 {
			return domainerrors.ErrNothingToWithdraw
		}

		result = ports.DrawDownResult{
			Amount:              amount,
			PreviousTotalDrawn:  schedule.TotalDrawn,
			PreviousLastDrawnAt: schedule.LastDrawnAt,
		}
		if err := tx.Model(&scheduleModel{}).
			Where("schedule_id = ?", scheduleID).
			Updates(map[string]any{
				"total_drawn":   schedule.TotalDrawn + amount,
				"last_drawn_at": now,
			}).Error; err != nil {
			return err
		}
		schedule.TotalDrawn += amount
		schedule.LastDrawnAt = now
		result.Schedule = schedule
		return nil
	})
	if err != nil {
		return ports.DrawDownResult{}, err
	}
	return result, nil
}

func (r *Repository) RestoreDrawDown(ctx context.Context, scheduleID uint64, previousTotalDrawn uint64, previousLastDrawnAt int64) error {
	result := r.db.WithContext(ctx).
		Model(&scheduleModel{}).
		Where("schedule_id = ?", scheduleID).
		Updates(map[string]any{
			"total_drawn":   previousTotalDrawn,
			"last_drawn_at": previousLastDrawnAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrScheduleNotFound
	}
	return nil
}

func (r *Repository) SetPaused(ctx context.Context, paused bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := lockState(tx)
		if err != nil {
			return err
		}
		return tx.Model(&ledgerStateModel{}).
			Where("id = ?", state.ID).
			Update("paused", paused).Error
	})
}

func (r *Repository) IsPaused(ctx context.Context) (bool, error) {
	var state ledgerStateModel
	err := r.db.WithContext(ctx).Where("id = ?", 1).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return state.Paused, nil
}

func (r *Repository) AddAsset(ctx context.Context, asset string) error {
	asset = strings.TrimSpace(asset)
	if asset == "" {
		return domainerrors.ErrInvalidAsset
	}
	err := r.db.WithContext(ctx).Create(&assetModel{Asset: asset}).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil
		}
		return err
	}
	return nil
}

func (r *Repository) RemoveAsset(ctx context.Context, asset string) error {
	return r.db.WithContext(ctx).
		Where("asset = ?", strings.TrimSpace(asset)).
		Delete(&assetModel{}).Error
}

func (r *Repository) IsAssetAllowed(ctx context.Context, asset string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&assetModel{}).
		Where("asset = ?", strings.TrimSpace(asset)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
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

func lockState(tx *gorm.DB) (ledgerStateModel, error) {
	var state ledgerStateModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", 1).
		First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state = ledgerStateModel{ID: 1}
		if err := tx.Create(&state).Error; err != nil {
			return ledgerStateModel{}, err
		}
		return state, nil
	}
	if err != nil {
		return ledgerStateModel{}, err
	}
	return state, nil
}
