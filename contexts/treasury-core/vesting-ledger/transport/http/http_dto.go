package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateScheduleRequest struct {
	Asset        string `json:"asset"`
	Beneficiary  string `json:"beneficiary"`
	Amount       uint64 `json:"amount"`
	Start        int64  `json:"start"`
	DurationDays int64  `json:"duration_days"`
	CliffDays    int64  `json:"cliff_days"`
}

type ScheduleDTO struct {
	ScheduleID           uint64 `json:"schedule_id"`
	Asset                string `json:"asset"`
	Beneficiary          string `json:"beneficiary"`
	Start                int64  `json:"start"`
	End                  int64  `json:"end"`
	Cliff                int64  `json:"cliff"`
	TotalAmount          uint64 `json:"total_amount"`
	ReleaseRatePerSecond uint64 `json:"release_rate_per_second"`
	TotalDrawn           uint64 `json:"total_drawn"`
	LastDrawnAt          int64  `json:"last_drawn_at"`
}

type CreateScheduleResponse struct {
	Status string      `json:"status"`
	Data   ScheduleDTO `json:"data"`
}

type GetScheduleResponse struct {
	Status string      `json:"status"`
	Data   ScheduleDTO `json:"data"`
}

type AvailableDrawDownResponse struct {
	Status     string `json:"status"`
	ScheduleID uint64 `json:"schedule_id"`
	Available  uint64 `json:"available"`
}

type DrawDownResponse struct {
	Status string      `json:"status"`
	Amount uint64      `json:"amount"`
	Data   ScheduleDTO `json:"data"`
}

type DrawDownAllResponse struct {
	Status      string   `json:"status"`
	Beneficiary string   `json:"beneficiary"`
	ScheduleIDs []uint64 `json:"schedule_ids"`
	TotalAmount uint64   `json:"total_amount"`
}

type ActiveSchedulesResponse struct {
	Status      string   `json:"status"`
	Beneficiary string   `json:"beneficiary"`
	ScheduleIDs []uint64 `json:"schedule_ids"`
}

type PauseResponse struct {
	Status string `json:"status"`
	Paused bool   `json:"paused"`
}

type AssetRequest struct {
	Asset string `json:"asset"`
}

type AssetResponse struct {
	Status string `json:"status"`
	Asset  string `json:"asset"`
}

type WithdrawRequest struct {
	Asset  string `json:"asset,omitempty"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

type WithdrawResponse struct {
	Status string `json:"status"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}
