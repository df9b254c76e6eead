package services

import "vestra/contexts/treasury-core/vesting-ledger/domain/entities"

// Available computes the amount a schedule releases at the instant now
// (unix seconds). The three branches are deliberate and load-bearing:
//
//  1. at or before the cliff nothing is releasable, even though accrual
//     conceptually started at Start;
//  2. past the end the exact remaining balance is owed, which repays the
//     remainder lost to the floor-divided per-second rate;
//  3. in between, release is linear since the later of Start and the last
//     drawdown.
func Available(schedule entities.Schedule, now int64) uint64 {
	if now <= schedule.Cliff {
		return 0
	}
	if now > schedule.End {
		return schedule.TotalAmount - schedule.TotalDrawn
	}
	base := schedule.Start
	if schedule.LastDrawnAt != 0 {
		base = schedule.LastDrawnAt
	}
	if now <= base {
		return 0
	}
	return uint64(now-base) * schedule.ReleaseRatePerSecond
}

// ReleaseRate is the floor-divided per-second rate. durationSeconds must be
// positive; callers validate before constructing a schedule.
func ReleaseRate(totalAmount uint64, durationSeconds int64) uint64 {
	return totalAmount / uint64(durationSeconds)
}
