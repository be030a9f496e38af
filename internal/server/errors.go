package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/smartbizsa/backend/internal/invoice/domain"
	tenantdomain "github.com/smartbizsa/backend/internal/tenant/domain"
)

// apiError carries a route-specific message alongside the wrapped cause so
// mapError can keep the fixed response strings the frontend relies on.
type apiError struct {
	status  int
	message string
	cause   error
}

func (e *apiError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *apiError) Unwrap() error {
	return e.cause
}

func badRequest(message string) error {
	return &apiError{status: http.StatusBadRequest, message: message}
}

func backendFailure(cause error) error {
	return &apiError{status: http.StatusInternalServerError, message: cause.Error(), cause: cause}
}

// ErrorHandlingMiddleware converts errors recorded on the context into a
// JSON response once the handler chain finishes.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, gin.H{"error": message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	var api *apiError
	if errors.As(err, &api) {
		return api.status, api.message
	}

	switch {
	case errors.Is(err, invoicedomain.ErrNotFound):
		return http.StatusNotFound, "Invoice not found"
	case errors.Is(err, tenantdomain.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, invoicedomain.ErrInvalidRequest):
		return http.StatusBadRequest, "Missing required fields: client_name and items are required"
	case errors.Is(err, invoicedomain.ErrNumberCollision):
		return http.StatusConflict, "Invoice number conflict"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
