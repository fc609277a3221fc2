//go:build unit

package user_test

import (
	"testing"

	"event-customize/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleUser))
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleAdmin))
	assert.True(t, user.RoleUser.AtLeast(user.RoleUser))
	assert.False(t, user.RoleUser.AtLeast(user.RoleAdmin))
	assert.False(t, user.Role("guest").AtLeast(user.RoleUser))
	assert.False(t, user.RoleAdmin.AtLeast(user.Role("root")))
}

func TestNewRole(t *testing.T) {
	r, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.True(t, user.Actor{Role: r}.IsAdmin())

	_, err = user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
