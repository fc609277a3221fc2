// Package ledger implements the requester wallet behind shared.LedgerGateway.
//
// Every movement is journaled under (reference, kind). A repeated Charge or
// Refund for the same reference is a no-op, and a Refund recorded before its
// Charge voids that Charge, so a caller that timed out can always compensate.
package ledger

import (
	"event-customize/internal/pkg/errs"
	"event-customize/internal/usecase/shared"
)

const (
	kindDeposit = "deposit"
	kindCharge  = "charge"
	kindRefund  = "refund"
)

var (
	ErrInvalidAmount = errs.Mark(errs.New("ledger amount must be positive"), errs.ErrValidation)
	ErrChargeVoided  = errs.New("charge reference was already refunded")
)

var (
	_ shared.LedgerGateway = (*PostgresLedger)(nil)
	_ shared.LedgerGateway = (*MemoryLedger)(nil)
)
