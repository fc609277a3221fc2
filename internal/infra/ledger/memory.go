package ledger

import (
	"context"
	"sync"

	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

type journalKey struct {
	reference uuid.UUID
	kind      string
}

type MemoryLedger struct {
	mu       sync.Mutex
	balances map[uuid.UUID]int64
	journal  map[journalKey]int64
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances: make(map[uuid.UUID]int64),
		journal:  make(map[journalKey]int64),
	}
}

func (l *MemoryLedger) Deposit(_ context.Context, accountID uuid.UUID, amount int64, reference uuid.UUID) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	key := journalKey{reference, kindDeposit}
	if _, done := l.journal[key]; done {
		return nil
	}
	l.journal[key] = amount
	l.balances[accountID] += amount
	return nil
}

func (l *MemoryLedger) Charge(ctx context.Context, accountID uuid.UUID, amount int64, reference uuid.UUID) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, voided := l.journal[journalKey{reference, kindRefund}]; voided {
		return ErrChargeVoided
	}
	key := journalKey{reference, kindCharge}
	if _, done := l.journal[key]; done {
		return nil
	}
	if l.balances[accountID] < amount {
		return shared.ErrInsufficientBalance
	}
	l.balances[accountID] -= amount
	l.journal[key] = amount
	return nil
}

func (l *MemoryLedger) Refund(_ context.Context, accountID uuid.UUID, _ int64, reference uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := journalKey{reference, kindRefund}
	if _, done := l.journal[key]; done {
		return nil
	}
	charged := l.journal[journalKey{reference, kindCharge}]
	l.journal[key] = charged
	l.balances[accountID] += charged
	return nil
}

func (l *MemoryLedger) Balance(accountID uuid.UUID) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[accountID]
}
