//go:build unit

package storage_test

import (
	"context"
	"strings"
	"testing"

	"event-customize/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreIsContentAddressed(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore("docs/")

	a, err := s.Upload(ctx, []byte("first"), "application/pdf")
	require.NoError(t, err)
	b, err := s.Upload(ctx, []byte("first"), "application/pdf")
	require.NoError(t, err)
	c, err := s.Upload(ctx, []byte("second"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, a.Key, b.Key)
	assert.NotEqual(t, a.Key, c.Key)
	assert.True(t, strings.HasPrefix(a.Key, "docs/"))
	assert.True(t, strings.HasSuffix(a.Key, ".pdf"))
	assert.True(t, strings.HasSuffix(c.Key, ".png"))
	assert.Equal(t, "memory://"+a.Key, a.URL)

	data, ok := s.Get(c.Key)
	require.True(t, ok)
	assert.Equal(t, "second", string(data))
}

func TestUnknownTypeGetsBinExtension(t *testing.T) {
	res, err := storage.NewMemoryStore("").Upload(context.Background(), []byte("x"), "application/zip")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Key, ".bin"))
}
