package provider

import (
	"context"

	"event-customize/internal/pkg/clock"
	"event-customize/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errs.New("provider profile not found")
	ErrNotEligible     = errs.Mark(errs.New("provider is not an active partner or member"), errs.ErrForbidden)
)

type ProfileReader interface {
	// FindProfile returns ErrProfileNotFound (possibly marked) when the account has no provider record.
	FindProfile(ctx context.Context, accountID uuid.UUID) (*Profile, error)
}

// Gate decides whether an actor may see or act on the open request pool.
// It reads the profile on every call so a lapse is observed at action time.
type Gate struct {
	reader ProfileReader
	clock  clock.Clock
}

func NewGate(reader ProfileReader, clk clock.Clock) *Gate {
	return &Gate{reader: reader, clock: clk}
}

// Using returns a gate that reads profiles through reader. Write paths pass the
// transaction's reader so the check shares the connection that holds the request lock.
func (g *Gate) Using(reader ProfileReader) *Gate {
	return &Gate{reader: reader, clock: g.clock}
}

func (g *Gate) Admit(ctx context.Context, accountID uuid.UUID) (*Profile, error) {
	profile, err := g.reader.FindProfile(ctx, accountID)
	if err != nil {
		if errs.Is(err, ErrProfileNotFound) {
			return nil, ErrNotEligible
		}
		return nil, err
	}
	if !profile.IsEligibleAt(g.clock.Now()) {
		return nil, ErrNotEligible
	}
	return profile, nil
}

// IsEligible is the non-failing form used by read paths that only branch on eligibility.
func (g *Gate) IsEligible(ctx context.Context, accountID uuid.UUID) (bool, error) {
	_, err := g.Admit(ctx, accountID)
	if err == nil {
		return true, nil
	}
	if errs.Is(err, ErrNotEligible) {
		return false, nil
	}
	return false, err
}
