package services

import (
	"testing"

	"vestra/contexts/treasury-core/vesting-ledger/domain/entities"
)

const day = 24 * 60 * 60

func TestAvailableIsZeroUpToCliff(t *testing.T) {
	schedule := entities.Schedule{
		Start:                0,
		End:                  10 * day,
		Cliff:                4 * day,
		TotalAmount:          864_000_000,
		ReleaseRatePerSecond: ReleaseRate(864_000_000, 10*day),
	}

	for _, now := range []int64{0, day, 4*day - 1, 4 * day} {
		if got := Available(schedule, now); got != 0 {
			t.Fatalf("Available at %d = %d, want 0 before cliff", now, got)
		}
	}
	if got := Available(schedule, 4*day+1); got == 0 {
		t.Fatalf("expected positive availability one second past the cliff")
	}
}

func TestAvailableAccruesFromLastDraw(t *testing.T) {
	schedule := entities.Schedule{
		Start:                1_000,
		End:                  1_000 + 10*day,
		Cliff:                1_000,
		TotalAmount:          8_640_000,
		ReleaseRatePerSecond: ReleaseRate(8_640_000, 10*day),
	}
	rate := schedule.ReleaseRatePerSecond

	if got := Available(schedule, 1_000+500); got != 500*rate {
		t.Fatalf("Available from start = %d, want %d", got, 500*rate)
	}

	schedule.LastDrawnAt = 1_000 + 500
	schedule.TotalDrawn = 500 * rate
	if got := Available(schedule, 1_000+800); got != 300*rate {
		t.Fatalf("Available from last draw = %d, want %d", got, 300*rate)
	}
	if got := Available(schedule, schedule.LastDrawnAt); got != 0 {
		t.Fatalf("Available with no elapsed time = %d, want 0", got)
	}
}

func TestAvailablePaysExactRemainderAfterEnd(t *testing.T) {
	// 5000 over 4 days floors to a zero per-second rate; the end branch must
	// still pay out the full entitlement.
	schedule := entities.Schedule{
		Start:                0,
		End:                  4 * day,
		Cliff:                0,
		TotalAmount:          5_000,
		ReleaseRatePerSecond: ReleaseRate(5_000, 4*day),
	}
	if schedule.ReleaseRatePerSecond != 0 {
		t.Fatalf("expected floored rate 0, got %d", schedule.ReleaseRatePerSecond)
	}
	if got := Available(schedule, 2*day); got != 0 {
		t.Fatalf("mid-window availability with floored rate = %d, want 0", got)
	}
	if got := Available(schedule, 4*day+1); got != 5_000 {
		t.Fatalf("post-end availability = %d, want full 5000", got)
	}

	schedule.TotalDrawn = 1_200
	if got := Available(schedule, 5*day); got != 3_800 {
		t.Fatalf("post-end availability after partial draw = %d, want 3800", got)
	}
}

func TestReleaseRateFloorsRemainder(t *testing.T) {
	if got := ReleaseRate(10, 3); got != 3 {
		t.Fatalf("ReleaseRate(10, 3) = %d, want 3", got)
	}
	if got := ReleaseRate(864_000, day); got != 10 {
		t.Fatalf("ReleaseRate(864000, day) = %d, want 10", got)
	}
}
