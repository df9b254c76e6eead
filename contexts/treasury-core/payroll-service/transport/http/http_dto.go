package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SetSalaryRequest installs the salary amount for one experience level.
type SetSalaryRequest struct {
	Amount uint64 `json:"amount"`
}

type SalaryResponse struct {
	Status string `json:"status"`
	Level  string `json:"level"`
	Amount uint64 `json:"amount"`
}

// CreatePayrollScheduleRequest opens a vesting schedule whose amount comes
// from the salary table rather than the request body.
type CreatePayrollScheduleRequest struct {
	Level        string `json:"level"`
	Asset        string `json:"asset"`
	Beneficiary  string `json:"beneficiary"`
	Start        int64  `json:"start"`
	DurationDays int64  `json:"duration_days"`
	CliffDays    int64  `json:"cliff_days"`
}

type CreatePayrollScheduleResponse struct {
	Status     string `json:"status"`
	ScheduleID uint64 `json:"schedule_id"`
}
