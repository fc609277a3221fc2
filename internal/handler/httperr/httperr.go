package httperr

import (
	"net/http"

	"event-customize/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    errs.Code `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var statusByCode = map[errs.Code]int{
	errs.CodeValidation:          http.StatusBadRequest,
	errs.CodeInsufficientBalance: http.StatusPaymentRequired,
	errs.CodeForbidden:           http.StatusForbidden,
	errs.CodeNotFound:            http.StatusNotFound,
	errs.CodeInvalidState:        http.StatusConflict,
	errs.CodeDuplicateSubmission: http.StatusConflict,
	errs.CodeRequestInProgress:   http.StatusConflict,
	errs.CodeInternal:            http.StatusInternalServerError,
}

func StatusOf(code errs.Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code errs.Code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use case error to its stable code and status. Internal failures
// never leak their message.
func Abort(c *gin.Context, err error) {
	code := errs.CodeOf(err)
	msg := errs.Message(err)
	if code == errs.CodeInternal {
		msg = "Internal server error"
	}
	AbortWithError(c, StatusOf(code), err, code, msg, nil)
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, errs.CodeValidation, msg, nil)
}
