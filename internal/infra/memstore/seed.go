package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"event-customize/internal/domain/provider"

	"github.com/google/uuid"
)

// Seed preloads the memory driver so a development instance is usable
// without the external ledger and membership services.
type Seed struct {
	Wallets []struct {
		AccountID uuid.UUID `json:"account_id"`
		Balance   int64     `json:"balance"`
	} `json:"wallets"`
	Providers []struct {
		AccountID        uuid.UUID  `json:"account_id"`
		Name             string     `json:"name"`
		Email            string     `json:"email"`
		PartnerExpiresAt *time.Time `json:"partner_expires_at,omitempty"`
		MemberExpiresAt  *time.Time `json:"member_expires_at,omitempty"`
	} `json:"providers"`
}

type Depositor interface {
	Deposit(ctx context.Context, accountID uuid.UUID, amount int64, reference uuid.UUID) error
}

func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return &seed, nil
}

func (s *Seed) Apply(ctx context.Context, store *Store, wallets Depositor) error {
	for _, w := range s.Wallets {
		if w.Balance <= 0 {
			continue
		}
		if err := wallets.Deposit(ctx, w.AccountID, w.Balance, uuid.New()); err != nil {
			return fmt.Errorf("seed wallet %s: %w", w.AccountID, err)
		}
	}
	for _, p := range s.Providers {
		store.PutProfile(provider.Profile{
			AccountID:        p.AccountID,
			Name:             p.Name,
			Email:            p.Email,
			IsPartner:        p.PartnerExpiresAt != nil,
			PartnerExpiresAt: p.PartnerExpiresAt,
			IsMember:         p.MemberExpiresAt != nil,
			MemberExpiresAt:  p.MemberExpiresAt,
		})
	}
	return nil
}
