package httperr

import (
	"errors"
	"net/http"

	"foodshare-api/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var errAborted = errors.New("request aborted")

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errAborted
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type kindMapping struct {
	kind    error
	status  int
	message string
}

// order matters: DuplicateRequest is also marked InvalidState
var kindMappings = []kindMapping{
	{kind: errs.ErrDuplicateRequest, status: http.StatusConflict, message: "already requested"},
	{kind: errs.ErrValidation, status: http.StatusBadRequest, message: "validation error"},
	{kind: errs.ErrNotFound, status: http.StatusNotFound, message: "not found"},
	{kind: errs.ErrForbidden, status: http.StatusForbidden, message: "not authorized"},
	{kind: errs.ErrInvalidState, status: http.StatusConflict, message: "invalid state"},
}

// AbortWithDomainError maps an error kind to its HTTP response. Unclassified
// errors become 500 without leaking their text.
func AbortWithDomainError(c *gin.Context, err error) {
	for _, m := range kindMappings {
		if errs.Is(err, m.kind) {
			AbortWithError(c, m.status, err, m.message, map[string]any{"reason": Reason(err)})
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// Reason is the innermost message of err, which for domain sentinels is the
// user-facing explanation.
func Reason(err error) string {
	return cr.UnwrapAll(err).Error()
}
