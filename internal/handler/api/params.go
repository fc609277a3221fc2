package api

import (
	"net/http"

	"event-customize/internal/domain/user"
	"event-customize/internal/handler/httperr"
	"event-customize/internal/handler/middleware"
	"event-customize/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errs.New("authenticated actor missing from context")

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// actor aborts with 401 when the auth middleware did not run.
func actor(c *gin.Context) (user.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, errs.CodeUnauthenticated, "Unauthorized", nil)
		return user.Actor{}, false
	}
	return a, true
}
