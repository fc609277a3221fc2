//go:build unit

package ledger_test

import (
	"context"
	"sync"
	"testing"

	"event-customize/internal/infra/ledger"
	"event-customize/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("charge and refund are idempotent per reference", func(t *testing.T) {
		l := ledger.NewMemoryLedger()
		acct, ref := uuid.New(), uuid.New()
		require.NoError(t, l.Deposit(ctx, acct, 100, uuid.New()))

		require.NoError(t, l.Charge(ctx, acct, 30, ref))
		require.NoError(t, l.Charge(ctx, acct, 30, ref))
		assert.Equal(t, int64(70), l.Balance(acct))

		require.NoError(t, l.Refund(ctx, acct, 30, ref))
		require.NoError(t, l.Refund(ctx, acct, 30, ref))
		assert.Equal(t, int64(100), l.Balance(acct))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		l := ledger.NewMemoryLedger()
		acct := uuid.New()
		require.NoError(t, l.Deposit(ctx, acct, 10, uuid.New()))

		err := l.Charge(ctx, acct, 11, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrInsufficientBalance))
		assert.Equal(t, int64(10), l.Balance(acct))
	})

	t.Run("refund before charge voids the charge", func(t *testing.T) {
		l := ledger.NewMemoryLedger()
		acct, ref := uuid.New(), uuid.New()
		require.NoError(t, l.Deposit(ctx, acct, 100, uuid.New()))

		require.NoError(t, l.Refund(ctx, acct, 50, ref))
		err := l.Charge(ctx, acct, 50, ref)
		assert.True(t, errs.Is(err, ledger.ErrChargeVoided))
		assert.Equal(t, int64(100), l.Balance(acct))
	})

	t.Run("non-positive amounts", func(t *testing.T) {
		l := ledger.NewMemoryLedger()
		assert.True(t, errs.Is(l.Deposit(ctx, uuid.New(), 0, uuid.New()), ledger.ErrInvalidAmount))
		assert.True(t, errs.Is(l.Charge(ctx, uuid.New(), -5, uuid.New()), ledger.ErrInvalidAmount))
	})

	t.Run("cancelled context", func(t *testing.T) {
		l := ledger.NewMemoryLedger()
		acct := uuid.New()
		require.NoError(t, l.Deposit(ctx, acct, 100, uuid.New()))
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.Error(t, l.Charge(cctx, acct, 10, uuid.New()))
		assert.Equal(t, int64(100), l.Balance(acct))
	})

	t.Run("concurrent charges never overdraw", func(t *testing.T) {
		l := ledger.NewMemoryLedger()
		acct := uuid.New()
		require.NoError(t, l.Deposit(ctx, acct, 100, uuid.New()))

		var (
			wg sync.WaitGroup
			mu sync.Mutex
			ok int
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if l.Charge(ctx, acct, 30, uuid.New()) == nil {
					mu.Lock()
					ok++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 3, ok)
		assert.Equal(t, int64(10), l.Balance(acct))
	})
}
