package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	accesspolicy "vestra/contexts/identity-access/access-policy"
	accesshttp "vestra/contexts/identity-access/access-policy/transport/http"
	vestingledger "vestra/contexts/treasury-core/vesting-ledger"
	"vestra/contexts/treasury-core/vesting-ledger/adapters/memory"
	"vestra/contexts/treasury-core/vesting-ledger/adapters/treasury"
	vestingerrors "vestra/contexts/treasury-core/vesting-ledger/domain/errors"
	vestinghttp "vestra/contexts/treasury-core/vesting-ledger/transport/http"
)

const daySeconds = int64(24 * 60 * 60)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

// newVestingStack wires a deterministic ledger module against a real access
// policy module, with "root" as bootstrap admin and a funded treasury.
func newVestingStack(t *testing.T) (vestingledger.Module, accesspolicy.Module, *treasury.Bank, *manualClock) {
	t.Helper()

	access := accesspolicy.NewInMemoryModule("root", nil)
	clock := &manualClock{now: time.Unix(0, 0).UTC()}
	store := memory.NewStore()
	bank := treasury.NewBank(nil)
	bank.Deposit("vch", 100_000_000_000_000)

	module := vestingledger.NewModule(vestingledger.Dependencies{
		Repository:  store,
		Roles:       access.Service,
		Treasury:    bank,
		Outbox:      store,
		Clock:       clock,
		IDGenerator: store,
	})

	ctx := context.Background()
	if _, err := access.Handler.GrantCreatorHandler(ctx, "root", accesshttp.RoleChangeRequest{Identity: "creator-1"}); err != nil {
		t.Fatalf("grant creator failed: %v", err)
	}
	if _, err := module.Handler.WhitelistAssetHandler(ctx, "root", vestinghttp.AssetRequest{Asset: "vch"}); err != nil {
		t.Fatalf("whitelist asset failed: %v", err)
	}
	return module, access, bank, clock
}

func createRequest(beneficiary string, amount uint64, start int64, durationDays int64, cliffDays int64) vestinghttp.CreateScheduleRequest {
	return vestinghttp.CreateScheduleRequest{
		Asset:        "vch",
		Beneficiary:  beneficiary,
		Amount:       amount,
		Start:        start,
		DurationDays: durationDays,
		CliffDays:    cliffDays,
	}
}

func TestVestingScheduleLifecycle(t *testing.T) {
	module, _, _, clock := newVestingStack(t)
	ctx := context.Background()

	created, err := module.Handler.CreateScheduleHandler(ctx, "creator-1", createRequest("ben-1", 5_000_000_000_000, 0, 10, 2))
	if err != nil {
		t.Fatalf("create schedule failed: %v", err)
	}
	if created.Data.ScheduleID != 0 {
		t.Fatalf("first schedule id = %d, want 0", created.Data.ScheduleID)
	}
	if created.Data.End != 10*daySeconds || created.Data.Cliff != 2*daySeconds {
		t.Fatalf("window = [%d, %d] cliff %d, want end 10d cliff 2d", created.Data.Start, created.Data.End, created.Data.Cliff)
	}

	// Inside the cliff nothing is available.
	clock.now = time.Unix(daySeconds, 0).UTC()
	available, err := module.Handler.AvailableDrawDownHandler(ctx, 0)
	if err != nil {
		t.Fatalf("available failed: %v", err)
	}
	if available.Available != 0 {
		t.Fatalf("available = %d inside cliff, want 0", available.Available)
	}

	clock.now = time.Unix(5*daySeconds, 0).UTC()
	drawn, err := module.Handler.DrawDownHandler(ctx, 0)
	if err != nil {
		t.Fatalf("drawdown failed: %v", err)
	}
	if drawn.Amount == 0 {
		t.Fatalf("expected positive mid-window drawdown")
	}
	if drawn.Data.TotalDrawn != drawn.Amount || drawn.Data.LastDrawnAt != 5*daySeconds {
		t.Fatalf("accounting = drawn %d at %d, want %d at 5d", drawn.Data.TotalDrawn, drawn.Data.LastDrawnAt, drawn.Amount)
	}

	clock.now = time.Unix(11*daySeconds, 0).UTC()
	final, err := module.Handler.DrawDownHandler(ctx, 0)
	if err != nil {
		t.Fatalf("final drawdown failed: %v", err)
	}
	if drawn.Amount+final.Amount != 5_000_000_000_000 {
		t.Fatalf("total paid = %d, want full entitlement", drawn.Amount+final.Amount)
	}

	if _, err := module.Handler.GetScheduleHandler(ctx, 99); !errors.Is(err, vestingerrors.ErrScheduleNotFound) {
		t.Fatalf("unknown id got %v, want ErrScheduleNotFound", err)
	}
}

func TestVestingCreationGatedByCreatorRole(t *testing.T) {
	module, access, _, _ := newVestingStack(t)
	ctx := context.Background()

	if _, err := module.Handler.CreateScheduleHandler(ctx, "outsider", createRequest("ben-1", 1_000, 0, 10, 0)); !errors.Is(err, vestingerrors.ErrUnauthorized) {
		t.Fatalf("create by outsider got %v, want ErrUnauthorized", err)
	}

	// Revoking the creator role closes the door again.
	if _, err := access.Handler.RevokeCreatorHandler(ctx, "root", accesshttp.RoleChangeRequest{Identity: "creator-1"}); err != nil {
		t.Fatalf("revoke creator failed: %v", err)
	}
	if _, err := module.Handler.CreateScheduleHandler(ctx, "creator-1", createRequest("ben-1", 1_000, 0, 10, 0)); !errors.Is(err, vestingerrors.ErrUnauthorized) {
		t.Fatalf("create after revoke got %v, want ErrUnauthorized", err)
	}
}

func TestVestingDrawDownAllAndActiveIDs(t *testing.T) {
	module, _, _, clock := newVestingStack(t)
	ctx := context.Background()
	const amount = uint64(5_000_000_000_000)

	for i, req := range []vestinghttp.CreateScheduleRequest{
		createRequest("ben-1", amount, 0, 4, 0),
		createRequest("ben-1", 2*amount, 4*daySeconds, 4, 0),
		createRequest("ben-1", amount, 8*daySeconds, 4, 0),
	} {
		created, err := module.Handler.CreateScheduleHandler(ctx, "creator-1", req)
		if err != nil {
			t.Fatalf("create schedule %d failed: %v", i, err)
		}
		if created.Data.ScheduleID != uint64(i) {
			t.Fatalf("schedule id = %d, want %d", created.Data.ScheduleID, i)
		}
	}

	clock.now = time.Unix(10*daySeconds, 0).UTC()
	active, err := module.Handler.ActiveSchedulesHandler(ctx, "ben-1")
	if err != nil {
		t.Fatalf("active ids failed: %v", err)
	}
	if len(active.ScheduleIDs) != 3 {
		t.Fatalf("active ids = %v, want all three", active.ScheduleIDs)
	}

	swept, err := module.Handler.DrawDownAllHandler(ctx, "ben-1")
	if err != nil {
		t.Fatalf("drawdown-all failed: %v", err)
	}
	if len(swept.ScheduleIDs) != 3 {
		t.Fatalf("drawdown-all touched %v, want all three", swept.ScheduleIDs)
	}
	if swept.TotalAmount <= 3*amount {
		t.Fatalf("drawdown-all paid %d, want both ended schedules in full plus accrual", swept.TotalAmount)
	}

	clock.now = time.Unix(10*daySeconds+3_600, 0).UTC()
	active, err = module.Handler.ActiveSchedulesHandler(ctx, "ben-1")
	if err != nil {
		t.Fatalf("active ids failed: %v", err)
	}
	if len(active.ScheduleIDs) != 1 || active.ScheduleIDs[0] != 2 {
		t.Fatalf("active ids = %v after sweep, want [2]", active.ScheduleIDs)
	}
}

func TestVestingPauseBlocksDrawDowns(t *testing.T) {
	module, _, _, clock := newVestingStack(t)
	ctx := context.Background()

	if _, err := module.Handler.CreateScheduleHandler(ctx, "creator-1", createRequest("ben-1", 5_000_000_000_000, 0, 10, 0)); err != nil {
		t.Fatalf("create schedule failed: %v", err)
	}

	paused, err := module.Handler.PauseHandler(ctx, "root")
	if err != nil {
		t.Fatalf("pause failed: %v", err)
	}
	if !paused.Paused {
		t.Fatalf("pause response not paused")
	}

	clock.now = time.Unix(5*daySeconds, 0).UTC()
	if _, err := module.Handler.DrawDownHandler(ctx, 0); !errors.Is(err, vestingerrors.ErrPaused) {
		t.Fatalf("drawdown while paused got %v, want ErrPaused", err)
	}

	// Creation stays open while paused.
	if _, err := module.Handler.CreateScheduleHandler(ctx, "creator-1", createRequest("ben-2", 1_000, 5*daySeconds, 5, 0)); err != nil {
		t.Fatalf("create while paused failed: %v", err)
	}

	if _, err := module.Handler.UnpauseHandler(ctx, "root"); err != nil {
		t.Fatalf("unpause failed: %v", err)
	}
	if _, err := module.Handler.DrawDownHandler(ctx, 0); err != nil {
		t.Fatalf("drawdown after unpause failed: %v", err)
	}
}

func TestVestingTreasuryWithdrawals(t *testing.T) {
	module, _, bank, _ := newVestingStack(t)
	ctx := context.Background()
	bank.DepositNative(2_000)

	if _, err := module.Handler.WithdrawHandler(ctx, "outsider", vestinghttp.WithdrawRequest{Asset: "vch", To: "ops", Amount: 100}); !errors.Is(err, vestingerrors.ErrUnauthorized) {
		t.Fatalf("withdraw by outsider got %v, want ErrUnauthorized", err)
	}

	resp, err := module.Handler.WithdrawHandler(ctx, "root", vestinghttp.WithdrawRequest{Asset: "vch", To: "ops", Amount: 100})
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}
	if resp.Amount != 100 || resp.To != "ops" {
		t.Fatalf("withdraw response = %+v", resp)
	}

	if _, err := module.Handler.WithdrawNativeHandler(ctx, "root", vestinghttp.WithdrawRequest{To: "ops", Amount: 3_000}); !errors.Is(err, vestingerrors.ErrTransferFailed) {
		t.Fatalf("overdrawn native withdraw got %v, want ErrTransferFailed", err)
	}
}
