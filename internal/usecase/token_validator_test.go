//go:build unit

package usecase

import (
	"testing"
	"time"

	"event-customize/internal/domain/user"
	"event-customize/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour, "")
	v := NewTokenValidator(svc)

	t.Run("valid", func(t *testing.T) {
		id := uuid.New()
		token, err := svc.GenerateToken(id, user.RoleUser)
		require.NoError(t, err)

		gotID, role, err := v.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.Equal(t, user.RoleUser, role)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.Role("superuser"))
		require.NoError(t, err)

		_, _, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, _, err := v.ValidateToken("x")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
