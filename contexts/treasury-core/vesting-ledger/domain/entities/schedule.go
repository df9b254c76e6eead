package entities

// Schedule is one beneficiary's entitlement to a linearly released amount of
// one asset over a fixed window. Core fields are immutable after creation;
// only TotalDrawn and LastDrawnAt change, and only through a drawdown.
type Schedule struct {
	ScheduleID  uint64 `json:"schedule_id"`
	Asset       string `json:"asset"`
	Beneficiary string `json:"beneficiary"`

	// Unix seconds. End = Start + duration, Cliff = Start + cliff duration,
	// Cliff <= End enforced at creation.
	Start int64 `json:"start"`
	End   int64 `json:"end"`
	Cliff int64 `json:"cliff"`

	// TotalAmount is the entitlement in smallest asset units, fixed at
	// creation. ReleaseRatePerSecond is TotalAmount / (End-Start) with floor
	// division; the lost remainder is paid out by the past-end branch of the
	// release math, never by the rate itself.
	TotalAmount          uint64 `json:"total_amount"`
	ReleaseRatePerSecond uint64 `json:"release_rate_per_second"`

	TotalDrawn  uint64 `json:"total_drawn"`
	LastDrawnAt int64  `json:"last_drawn_at"`
}
