package query

import (
	"context"

	"github.com/google/uuid"
)

const ensureWallet = `
INSERT INTO wallets (account_id, balance) VALUES ($1, 0)
ON CONFLICT (account_id) DO NOTHING`

func (q *Queries) EnsureWallet(ctx context.Context, db DBTX, accountID uuid.UUID) error {
	_, err := db.Exec(ctx, ensureWallet, accountID)
	return err
}

const lockWallet = `
SELECT account_id, balance FROM wallets WHERE account_id = $1 FOR UPDATE`

func (q *Queries) LockWallet(ctx context.Context, db DBTX, accountID uuid.UUID) (Wallet, error) {
	var i Wallet
	err := db.QueryRow(ctx, lockWallet, accountID).Scan(&i.AccountID, &i.Balance)
	return i, err
}

const debitWallet = `
UPDATE wallets SET balance = balance - $2, updated_at = now()
WHERE account_id = $1 AND balance >= $2`

// DebitWallet never drives a balance negative; zero rows means the funds were short.
func (q *Queries) DebitWallet(ctx context.Context, db DBTX, accountID uuid.UUID, amount int64) (int64, error) {
	tag, err := db.Exec(ctx, debitWallet, accountID, amount)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const creditWallet = `
UPDATE wallets SET balance = balance + $2, updated_at = now()
WHERE account_id = $1`

func (q *Queries) CreditWallet(ctx context.Context, db DBTX, accountID uuid.UUID, amount int64) error {
	_, err := db.Exec(ctx, creditWallet, accountID, amount)
	return err
}

const getWalletTransaction = `
SELECT account_id, reference, kind, amount FROM wallet_transactions
WHERE reference = $1 AND kind = $2`

func (q *Queries) GetWalletTransaction(ctx context.Context, db DBTX, reference uuid.UUID, kind string) (WalletTransaction, error) {
	var i WalletTransaction
	err := db.QueryRow(ctx, getWalletTransaction, reference, kind).Scan(&i.AccountID, &i.Reference, &i.Kind, &i.Amount)
	return i, err
}

const insertWalletTransaction = `
INSERT INTO wallet_transactions (account_id, reference, kind, amount)
VALUES ($1, $2, $3, $4)
ON CONFLICT (reference, kind) DO NOTHING`

// InsertWalletTransaction reports zero rows when the (reference, kind) entry already exists.
func (q *Queries) InsertWalletTransaction(ctx context.Context, db DBTX, arg WalletTransaction) (int64, error) {
	tag, err := db.Exec(ctx, insertWalletTransaction, arg.AccountID, arg.Reference, arg.Kind, arg.Amount)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
