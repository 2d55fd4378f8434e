package httperr

import (
	"net/http"

	"barista-bot/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
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

// StatusFor maps ordering errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrOrderNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrAlreadyPaid):
		return http.StatusConflict
	case errs.Is(err, errs.ErrInvalidSize),
		errs.Is(err, errs.ErrInvalidPaymentMethod),
		errs.Is(err, errs.ErrUnknownItem),
		errs.Is(err, errs.ErrIncompleteOrder),
		errs.Is(err, errs.ErrParseAmbiguous):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Abort picks the status from err and hides internal details behind a generic message.
func Abort(c *gin.Context, err error, msg string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, msg, gin.H{"reason": err.Error()})
}
