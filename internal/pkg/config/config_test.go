//go:build unit

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "test config is valid", mutate: func(*Config) {}},
		{name: "postgres needs credentials", mutate: func(c *Config) {
			c.Store.Driver = StoreDriverPostgres
			c.DB.User = ""
		}, wantErr: "DB_USER and DB_NAME"},
		{name: "postgres with credentials", mutate: func(c *Config) { c.Store.Driver = StoreDriverPostgres }},
		{name: "unknown store", mutate: func(c *Config) { c.Store.Driver = "sqlite" }, wantErr: "STORE_DRIVER"},
		{name: "unknown storage", mutate: func(c *Config) { c.Storage.Driver = "gcs" }, wantErr: "STORAGE_DRIVER"},
		{name: "unknown notify", mutate: func(c *Config) { c.Notify.Driver = "smtp" }, wantErr: "NOTIFY_DRIVER"},
		{name: "unknown orphan policy", mutate: func(c *Config) { c.Workflow.OrphanProposals = "archive" }, wantErr: "WORKFLOW_ORPHAN_PROPOSALS"},
		{name: "zero charge", mutate: func(c *Config) { c.Workflow.RequestCharge = 0 }, wantErr: "WORKFLOW_REQUEST_CHARGE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewTestConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults for a memory deployment", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("STORE_DRIVER", StoreDriverMemory)
		t.Setenv("STORAGE_DRIVER", StorageDriverMemory)
		t.Setenv("NOTIFY_DRIVER", NotifyDriverLog)
		t.Setenv("WORKFLOW_LEDGER_TIMEOUT", "750ms")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, int64(50), cfg.Workflow.RequestCharge)
		assert.Equal(t, 750*time.Millisecond, cfg.Workflow.LedgerTimeout)
		assert.Equal(t, OrphanPolicyReject, cfg.Workflow.OrphanProposals)
		assert.Equal(t, 24*time.Hour, cfg.Workflow.IdempotencyTTL)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "")
		require.NoError(t, os.Unsetenv("JWT_SECRET"))
		t.Setenv("STORE_DRIVER", StoreDriverMemory)

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("invalid driver is rejected after parsing", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("STORE_DRIVER", "cassandra")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "STORE_DRIVER")
	})
}
