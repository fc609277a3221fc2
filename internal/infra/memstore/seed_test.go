//go:build unit

package memstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"event-customize/internal/infra/ledger"
	"event-customize/internal/infra/memstore"
	"event-customize/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndApplySeed(t *testing.T) {
	requester := uuid.New()
	partner := uuid.New()
	seedJSON := `{
  "wallets": [{"account_id": "` + requester.String() + `", "balance": 300}],
  "providers": [{
    "account_id": "` + partner.String() + `",
    "name": "Harbor Events",
    "email": "hello@harbor.example",
    "partner_expires_at": "2027-01-01T00:00:00Z"
  }]
}`
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(seedJSON), 0o600))

	seed, err := memstore.LoadSeed(path)
	require.NoError(t, err)

	store := memstore.New(clock.NewMockClock(now))
	wallet := ledger.NewMemoryLedger()
	require.NoError(t, seed.Apply(context.Background(), store, wallet))

	assert.Equal(t, int64(300), wallet.Balance(requester))
	profile, err := store.FindProfile(context.Background(), partner)
	require.NoError(t, err)
	assert.True(t, profile.IsPartner)
	assert.False(t, profile.IsMember)
	assert.True(t, profile.IsEligibleAt(now))
}

func TestLoadSeedErrors(t *testing.T) {
	_, err := memstore.LoadSeed(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = memstore.LoadSeed(path)
	assert.Error(t, err)
}
