//go:build unit

package api_test

import (
	"net/http"

	"event-customize/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const testToken = "test-token"

// fakeAuth stands in for the JWT middleware: any bearer token authenticates as actor.
func fakeAuth(actor *user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "UNAUTHENTICATED", "message": "Unauthorized"}})
			return
		}
		c.Set("user_id", actor.ID)
		c.Set("user_role", actor.Role)
		c.Next()
	}
}

func newActor(role user.Role) *user.Actor {
	return &user.Actor{ID: uuid.New(), Role: role}
}
