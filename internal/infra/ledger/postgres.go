package ledger

import (
	"context"

	"event-customize/internal/infra"
	"event-customize/internal/infra/query"
	"event-customize/internal/pkg/pgconv"
	"event-customize/internal/usecase/shared"

	"github.com/google/uuid"
)

type WalletQueries interface {
	EnsureWallet(ctx context.Context, db query.DBTX, accountID uuid.UUID) error
	LockWallet(ctx context.Context, db query.DBTX, accountID uuid.UUID) (query.Wallet, error)
	DebitWallet(ctx context.Context, db query.DBTX, accountID uuid.UUID, amount int64) (int64, error)
	CreditWallet(ctx context.Context, db query.DBTX, accountID uuid.UUID, amount int64) error
	GetWalletTransaction(ctx context.Context, db query.DBTX, reference uuid.UUID, kind string) (query.WalletTransaction, error)
	InsertWalletTransaction(ctx context.Context, db query.DBTX, arg query.WalletTransaction) (int64, error)
}

// TxRunner is satisfied by uow.PostgresUoW.
type TxRunner interface {
	WithinDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

// PostgresLedger serializes movements per wallet through the wallet row lock.
type PostgresLedger struct {
	tx      TxRunner
	queries WalletQueries
}

func NewPostgresLedger(tx TxRunner, queries WalletQueries) *PostgresLedger {
	return &PostgresLedger{tx: tx, queries: queries}
}

func (l *PostgresLedger) lock(ctx context.Context, db query.DBTX, accountID uuid.UUID) (query.Wallet, error) {
	if err := l.queries.EnsureWallet(ctx, db, accountID); err != nil {
		return query.Wallet{}, infra.WrapRepoErr("failed to ensure wallet", err)
	}
	w, err := l.queries.LockWallet(ctx, db, accountID)
	if err != nil {
		return query.Wallet{}, infra.WrapRepoErr("failed to lock wallet", err)
	}
	return w, nil
}

func (l *PostgresLedger) exists(ctx context.Context, db query.DBTX, reference uuid.UUID, kind string) (*query.WalletTransaction, error) {
	entry, err := l.queries.GetWalletTransaction(ctx, db, reference, kind)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read wallet journal", err)
	}
	return &entry, nil
}

func (l *PostgresLedger) Deposit(ctx context.Context, accountID uuid.UUID, amount int64, reference uuid.UUID) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return l.tx.WithinDB(ctx, func(ctx context.Context, db query.DBTX) error {
		if _, err := l.lock(ctx, db, accountID); err != nil {
			return err
		}
		n, err := l.queries.InsertWalletTransaction(ctx, db, query.WalletTransaction{
			AccountID: accountID, Reference: reference, Kind: kindDeposit, Amount: amount,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to journal deposit", err)
		}
		if n == 0 {
			return nil
		}
		if err := l.queries.CreditWallet(ctx, db, accountID, amount); err != nil {
			return infra.WrapRepoErr("failed to credit wallet", err)
		}
		return nil
	})
}

func (l *PostgresLedger) Charge(ctx context.Context, accountID uuid.UUID, amount int64, reference uuid.UUID) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return l.tx.WithinDB(ctx, func(ctx context.Context, db query.DBTX) error {
		if _, err := l.lock(ctx, db, accountID); err != nil {
			return err
		}

		refund, err := l.exists(ctx, db, reference, kindRefund)
		if err != nil {
			return err
		}
		if refund != nil {
			return ErrChargeVoided
		}
		charge, err := l.exists(ctx, db, reference, kindCharge)
		if err != nil {
			return err
		}
		if charge != nil {
			return nil
		}

		n, err := l.queries.DebitWallet(ctx, db, accountID, amount)
		if err != nil {
			return infra.WrapRepoErr("failed to debit wallet", err)
		}
		if n == 0 {
			return shared.ErrInsufficientBalance
		}
		if _, err := l.queries.InsertWalletTransaction(ctx, db, query.WalletTransaction{
			AccountID: accountID, Reference: reference, Kind: kindCharge, Amount: amount,
		}); err != nil {
			return infra.WrapRepoErr("failed to journal charge", err)
		}
		return nil
	})
}

// Refund credits back whatever the reference charged, which may be nothing.
// The refund entry is written either way so a late Charge cannot land.
func (l *PostgresLedger) Refund(ctx context.Context, accountID uuid.UUID, _ int64, reference uuid.UUID) error {
	return l.tx.WithinDB(ctx, func(ctx context.Context, db query.DBTX) error {
		if _, err := l.lock(ctx, db, accountID); err != nil {
			return err
		}

		charge, err := l.exists(ctx, db, reference, kindCharge)
		if err != nil {
			return err
		}
		var amount int64
		if charge != nil {
			amount = charge.Amount
		}

		n, err := l.queries.InsertWalletTransaction(ctx, db, query.WalletTransaction{
			AccountID: accountID, Reference: reference, Kind: kindRefund, Amount: amount,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to journal refund", err)
		}
		if n == 0 || amount == 0 {
			return nil
		}
		if err := l.queries.CreditWallet(ctx, db, accountID, amount); err != nil {
			return infra.WrapRepoErr("failed to credit wallet", err)
		}
		return nil
	})
}

func (l *PostgresLedger) Balance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var balance int64
	err := l.tx.WithinDB(ctx, func(ctx context.Context, db query.DBTX) error {
		w, err := l.lock(ctx, db, accountID)
		balance = w.Balance
		return err
	})
	return balance, err
}
