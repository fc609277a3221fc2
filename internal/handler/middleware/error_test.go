//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"event-customize/internal/handler/httperr"
	"event-customize/internal/handler/middleware"
	"event-customize/internal/pkg/config"
	"event-customize/internal/pkg/errs"
	"event-customize/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()
	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Code = errs.CodeInvalidState
		resp.Error.Message = "transition not allowed"
		_ = c.Error(&gin.Error{Err: errors.New("boom"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("driver exploded"))
	})
	r.GET("/status-only", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/aborted", func(c *gin.Context) {
		httperr.Abort(c, errs.Mark(errs.New("gone"), errs.ErrNotFound))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	t.Run("public error meta is rendered", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, string(errs.CodeInvalidState))
		assert.Contains(t, w.Body.String(), "transition not allowed")
	})

	t.Run("private error becomes internal", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, string(errs.CodeInternal))
		assert.NotContains(t, w.Body.String(), "driver exploded")
	})

	t.Run("explicit status passes through", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/status-only", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("already written response is untouched", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/aborted", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, string(errs.CodeNotFound))
	})

	t.Run("panic is recovered", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, string(errs.CodeInternal))
	})
}

func TestLoggerRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "2006-01-02"})
	require.NotNil(t, logger.GetSlogLogger())

	r := gin.New()
	r.Use(logger.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("caller id is kept", func(t *testing.T) {
		w := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/ping", nil, "", map[string]string{"X-Request-ID": "req-42"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "req-42", w.Body.String())
	})

	t.Run("id is generated", func(t *testing.T) {
		w1 := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
		w2 := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
		id := w1.Header().Get("X-Request-ID")
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w1.Body.String())
		assert.NotEqual(t, id, w2.Header().Get("X-Request-ID"))
	})
}
