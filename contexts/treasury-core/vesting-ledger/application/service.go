package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"vestra/contexts/treasury-core/vesting-ledger/domain/entities"
	domainerrors "vestra/contexts/treasury-core/vesting-ledger/domain/errors"
	"vestra/contexts/treasury-core/vesting-ledger/domain/services"
	"vestra/contexts/treasury-core/vesting-ledger/ports"
)

const secondsPerDay = 24 * 60 * 60

// Service is the ledger entry point. Mutations are serialized by the
// repository; the service contributes role gating, pause gating, transfer
// signaling, and event emission. Accounting is always applied before the
// external transfer is signaled, and compensated if the transfer fails.
type Service struct {
	Repo     ports.Repository
	Roles    ports.RoleChecker
	Treasury ports.TokenTransfer
	Outbox   ports.OutboxWriter
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// CreateSchedule validates in documented order, appends the schedule, and
// indexes it under the beneficiary. The first failing precondition is
// reported and nothing is mutated. Creation is never gated by pause.
func (s Service) CreateSchedule(
	ctx context.Context,
	callerID string,
	input ports.CreateScheduleInput,
) (entities.Schedule, error) {
	logger := ResolveLogger(s.Logger)

	isCreator, err := s.Roles.IsWhitelistedCreator(ctx, strings.TrimSpace(callerID))
	if err != nil {
		return entities.Schedule{}, err
	}
	if !isCreator {
		return entities.Schedule{}, domainerrors.ErrUnauthorized
	}

	asset := strings.TrimSpace(input.Asset)
	allowed, err := s.Repo.IsAssetAllowed(ctx, asset)
	if err != nil {
		return entities.Schedule{}, err
	}
	if !allowed {
		return entities.Schedule{}, domainerrors.ErrAssetNotAllowed
	}

	beneficiary := strings.TrimSpace(input.Beneficiary)
	if beneficiary == "" {
		return entities.Schedule{}, domainerrors.ErrInvalidBeneficiary
	}
	if input.Amount == 0 {
		return entities.Schedule{}, domainerrors.ErrInvalidAmount
	}
	if input.DurationDays <= 0 {
		return entities.Schedule{}, domainerrors.ErrInvalidDuration
	}
	if input.CliffDays < 0 || input.CliffDays > input.DurationDays {
		return entities.Schedule{}, domainerrors.ErrCliffExceedsDuration
	}

	durationSeconds := input.DurationDays * secondsPerDay
	schedule := entities.Schedule{
		Asset:                asset,
		Beneficiary:          beneficiary,
		Start:                input.Start,
		End:                  input.Start + durationSeconds,
		Cliff:                input.Start + input.CliffDays*secondsPerDay,
		TotalAmount:          input.Amount,
		ReleaseRatePerSecond: services.ReleaseRate(input.Amount, durationSeconds),
	}

	created, err := s.Repo.AppendSchedule(ctx, schedule)
	if err != nil {
		return entities.Schedule{}, err
	}

	if err := s.appendLedgerEvent(ctx, "vesting.schedule_created", created.Beneficiary, map[string]any{
		"beneficiary": created.Beneficiary,
		"schedule_id": created.ScheduleID,
		"asset":       created.Asset,
		"amount":      created.TotalAmount,
	}); err != nil {
		return entities.Schedule{}, err
	}

	logger.Info("vesting schedule created",
		"event", "vesting_schedule_created",
		"module", "treasury-core/vesting-ledger",
		"layer", "application",
		"schedule_id", created.ScheduleID,
		"beneficiary", created.Beneficiary,
		"asset", created.Asset,
		"amount", created.TotalAmount,
	)
	return created, nil
}

// AvailableDrawDown is the pure availability query for one schedule.
func (s Service) AvailableDrawDown(ctx context.Context, scheduleID uint64) (uint64, error) {
	schedule, err := s.Repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return 0, err
	}
	return services.Available(schedule, s.nowUnix()), nil
}

// GetSchedule returns the stored record; ids never expire or get reused.
func (s Service) GetSchedule(ctx context.Context, scheduleID uint64) (entities.Schedule, error) {
	return s.Repo.GetSchedule(ctx, scheduleID)
}

// DrawDown realizes the currently vested portion of one schedule. Accounting
// is applied before the transfer is signaled; a failed transfer restores the
// prior accounting so the operation has no observable effect.
func (s Service) DrawDown(ctx context.Context, scheduleID uint64) (ports.DrawDownResult, error) {
	logger := ResolveLogger(s.Logger)

	paused, err := s.Repo.IsPaused(ctx)
	if err != nil {
		return ports.DrawDownResult{}, err
	}
	if paused {
		return ports.DrawDownResult{}, domainerrors.ErrPaused
	}

	now := s.nowUnix()
	result, err := s.Repo.ApplyDrawDown(ctx, scheduleID, now)
	if err != nil {
		return ports.DrawDownResult{}, err
	}

	if err := s.Treasury.Transfer(ctx, result.Schedule.Asset, result.Schedule.Beneficiary, result.Amount); err != nil {
		logger.Error("drawdown transfer failed",
			"event", "vesting_drawdown_transfer_failed",
			"module", "treasury-core/vesting-ledger",
			"layer", "application",
			"schedule_id", scheduleID,
			"beneficiary", result.Schedule.Beneficiary,
			"amount", result.Amount,
			"error", err.Error(),
		)
		if restoreErr := s.Repo.RestoreDrawDown(ctx, scheduleID, result.PreviousTotalDrawn, result.PreviousLastDrawnAt); restoreErr != nil {
			return ports.DrawDownResult{}, restoreErr
		}
		return ports.DrawDownResult{}, domainerrors.ErrTransferFailed
	}

	if err := s.appendLedgerEvent(ctx, "vesting.drawdown", result.Schedule.Beneficiary, map[string]any{
		"beneficiary": result.Schedule.Beneficiary,
		"schedule_id": scheduleID,
		"amount":      result.Amount,
		"drawn_at":    now,
	}); err != nil {
		return ports.DrawDownResult{}, err
	}

	logger.Info("vesting drawdown completed",
		"event", "vesting_drawdown_completed",
		"module", "treasury-core/vesting-ledger",
		"layer", "application",
		"schedule_id", scheduleID,
		"beneficiary", result.Schedule.Beneficiary,
		"amount", result.Amount,
	)
	return result, nil
}

// DrawDownAll draws every currently active schedule of the beneficiary in
// ascending id order. Each draw is independently atomic: the first failure
// stops iteration and is returned, but draws already performed in this call
// are kept. Schedules are independent economic objects, so a later failure
// never unwinds an earlier payout.
func (s Service) DrawDownAll(ctx context.Context, beneficiary string) ([]ports.DrawDownResult, error) {
	ids, err := s.ActiveScheduleIDs(ctx, beneficiary)
	if err != nil {
		return nil, err
	}
	results := make([]ports.DrawDownResult, 0, len(ids))
	for _, id := range ids {
		result, err := s.DrawDown(ctx, id)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// ActiveScheduleIDs returns the beneficiary's schedule ids with a positive
// available amount right now, preserving creation order. Two passes: count,
// then fill a result of exactly that size.
func (s Service) ActiveScheduleIDs(ctx context.Context, beneficiary string) ([]uint64, error) {
	beneficiary = strings.TrimSpace(beneficiary)
	if beneficiary == "" {
		return nil, domainerrors.ErrInvalidBeneficiary
	}
	ids, err := s.Repo.ListScheduleIDs(ctx, beneficiary)
	if err != nil {
		return nil, err
	}
	now := s.nowUnix()

	count := 0
	for _, id := range ids {
		schedule, err := s.Repo.GetSchedule(ctx, id)
		if err != nil {
			return nil, err
		}
		if services.Available(schedule, now) > 0 {
			count++
		}
	}

	active := make([]uint64, 0, count)
	for _, id := range ids {
		schedule, err := s.Repo.GetSchedule(ctx, id)
		if err != nil {
			return nil, err
		}
		if services.Available(schedule, now) > 0 {
			active = append(active, id)
		}
	}
	return active, nil
}

// Pause stops all drawdowns. Pausing an already-paused ledger is a no-op.
func (s Service) Pause(ctx context.Context, callerID string) error {
	return s.setPaused(ctx, callerID, true)
}

// Unpause re-enables drawdowns.
func (s Service) Unpause(ctx context.Context, callerID string) error {
	return s.setPaused(ctx, callerID, false)
}

func (s Service) setPaused(ctx context.Context, callerID string, paused bool) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if err := s.Repo.SetPaused(ctx, paused); err != nil {
		return err
	}
	eventType := "vesting.paused"
	if !paused {
		eventType = "vesting.unpaused"
	}
	if err := s.appendLedgerEvent(ctx, eventType, "ledger", map[string]any{
		"actor_id": strings.TrimSpace(callerID),
	}); err != nil {
		return err
	}
	ResolveLogger(s.Logger).Info("ledger pause state changed",
		"event", "vesting_pause_changed",
		"module", "treasury-core/vesting-ledger",
		"layer", "application",
		"paused", paused,
		"actor_id", strings.TrimSpace(callerID),
	)
	return nil
}

// WhitelistAsset allows an asset for future schedule creation. Membership is
// never re-checked for existing schedules.
func (s Service) WhitelistAsset(ctx context.Context, callerID string, asset string) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	asset = strings.TrimSpace(asset)
	if asset == "" {
		return domainerrors.ErrInvalidAsset
	}
	if err := s.Repo.AddAsset(ctx, asset); err != nil {
		return err
	}
	return s.appendLedgerEvent(ctx, "vesting.asset_whitelisted", asset, map[string]any{
		"asset":    asset,
		"actor_id": strings.TrimSpace(callerID),
	})
}

// RemoveAssetFromWhitelist blocks an asset for future creations only.
func (s Service) RemoveAssetFromWhitelist(ctx context.Context, callerID string, asset string) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	asset = strings.TrimSpace(asset)
	if err := s.Repo.RemoveAsset(ctx, asset); err != nil {
		return err
	}
	return s.appendLedgerEvent(ctx, "vesting.asset_removed", asset, map[string]any{
		"asset":    asset,
		"actor_id": strings.TrimSpace(callerID),
	})
}

// Withdraw sweeps un-allocated asset balance out of the ledger. Not part of
// vesting accounting.
func (s Service) Withdraw(ctx context.Context, callerID string, asset string, to string, amount uint64) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	asset = strings.TrimSpace(asset)
	if asset == "" {
		return domainerrors.ErrInvalidAsset
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return domainerrors.ErrInvalidRecipient
	}
	if amount == 0 {
		return domainerrors.ErrInvalidAmount
	}
	if err := s.Treasury.Transfer(ctx, asset, to, amount); err != nil {
		return domainerrors.ErrTransferFailed
	}
	return s.appendLedgerEvent(ctx, "vesting.treasury_withdrawn", asset, map[string]any{
		"asset":    asset,
		"to":       to,
		"amount":   amount,
		"actor_id": strings.TrimSpace(callerID),
	})
}

// WithdrawNative sweeps the ledger's native balance.
func (s Service) WithdrawNative(ctx context.Context, callerID string, to string, amount uint64) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return domainerrors.ErrInvalidRecipient
	}
	if amount == 0 {
		return domainerrors.ErrInvalidAmount
	}
	if err := s.Treasury.TransferNative(ctx, to, amount); err != nil {
		return domainerrors.ErrTransferFailed
	}
	return s.appendLedgerEvent(ctx, "vesting.native_withdrawn", to, map[string]any{
		"to":       to,
		"amount":   amount,
		"actor_id": strings.TrimSpace(callerID),
	})
}

func (s Service) requireAdmin(ctx context.Context, callerID string) error {
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return domainerrors.ErrUnauthorized
	}
	isAdmin, err := s.Roles.IsAdmin(ctx, callerID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domainerrors.ErrUnauthorized
	}
	return nil
}

func (s Service) appendLedgerEvent(
	ctx context.Context,
	eventType string,
	partitionKey string,
	payload map[string]any,
) error {
	if s.Outbox == nil {
		return nil
	}
	eventID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.Outbox.AppendOutbox(ctx, ports.EventEnvelope{
		EventID:          eventID,
		EventType:        eventType,
		OccurredAt:       s.now(),
		SourceService:    "vesting-ledger",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "beneficiary",
		PartitionKey:     partitionKey,
		Data:             data,
	})
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) nowUnix() int64 {
	return s.now().Unix()
}
