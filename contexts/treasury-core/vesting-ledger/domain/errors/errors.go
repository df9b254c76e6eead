package errors

import "errors"

var (
	ErrUnauthorized         = errors.New("caller lacks the required role")
	ErrAssetNotAllowed      = errors.New("asset is not on the allow-list")
	ErrInvalidBeneficiary   = errors.New("beneficiary identity is invalid")
	ErrInvalidAmount        = errors.New("amount must be strictly positive")
	ErrInvalidDuration      = errors.New("duration must be strictly positive")
	ErrCliffExceedsDuration = errors.New("cliff exceeds schedule duration")
	ErrScheduleNotFound     = errors.New("vesting schedule not found")
	ErrScheduleEmpty        = errors.New("vesting schedule holds no amount")
	ErrNothingToWithdraw    = errors.New("no vested amount available to withdraw")
	ErrPaused               = errors.New("ledger is paused")
	ErrTransferFailed       = errors.New("asset transfer failed")
	ErrInvalidAsset         = errors.New("asset identity is invalid")
	ErrInvalidRecipient     = errors.New("recipient identity is invalid")
	ErrNotFound             = errors.New("vesting ledger record not found")
)
