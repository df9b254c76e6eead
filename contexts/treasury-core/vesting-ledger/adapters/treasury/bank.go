package treasury

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Bank is the in-process TokenTransfer adapter. It tracks the ledger's own
// per-asset balances and debits them on transfer, which gives drawdowns a
// real failure mode (insufficient deposits) without external custody wiring.
type Bank struct {
	mu sync.Mutex

	balances      map[string]uint64
	nativeBalance uint64
	transferErr   error
	logger        *slog.Logger

	// Transfers records every successful outgoing transfer in order.
	Transfers []Transfer
}

// Transfer is one completed outgoing payment.
type Transfer struct {
	Asset  string
	To     string
	Amount uint64
	Native bool
}

var ErrInsufficientFunds = errors.New("treasury balance is insufficient")

func NewBank(logger *slog.Logger) *Bank {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bank{
		balances: make(map[string]uint64),
		logger:   logger,
	}
}

// Deposit credits the ledger's balance of one asset.
func (b *Bank) Deposit(asset string, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.balances[asset] += amount
}

// DepositNative credits the ledger's native balance.
func (b *Bank) DepositNative(amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nativeBalance += amount
}

// FailTransfers forces every subsequent transfer to fail with err until
// called again with nil. Used to exercise the compensation path.
func (b *Bank) FailTransfers(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.transferErr = err
}

func (b *Bank) Balance(asset string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.balances[asset]
}

func (b *Bank) Transfer(_ context.Context, asset string, to string, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.transferErr != nil {
		return b.transferErr
	}
	if b.balances[asset] < amount {
		return ErrInsufficientFunds
	}
	b.balances[asset] -= amount
	b.Transfers = append(b.Transfers, Transfer{Asset: asset, To: to, Amount: amount})

	b.logger.Info("asset transferred",
		"event", "treasury_transfer",
		"module", "treasury-core/vesting-ledger",
		"layer", "adapter",
		"asset", asset,
		"to", to,
		"amount", amount,
	)
	return nil
}

func (b *Bank) TransferNative(_ context.Context, to string, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.transferErr != nil {
		return b.transferErr
	}
	if b.nativeBalance < amount {
		return ErrInsufficientFunds
	}
	b.nativeBalance -= amount
	b.Transfers = append(b.Transfers, Transfer{To: to, Amount: amount, Native: true})

	b.logger.Info("native balance transferred",
		"event", "treasury_transfer_native",
		"module", "treasury-core/vesting-ledger",
		"layer", "adapter",
		"to", to,
		"amount", amount,
	)
	return nil
}
