package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/quicktask-analytics/internal/services"
	"github.com/adanyl0v/quicktask-analytics/internal/storage"
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newInternalServerError(message string) apiError {
	return newAPIError(http.StatusInternalServerError, message)
}

// translateError is the only place where service errors become responses.
func translateError(err error) apiError {
	switch {
	case errors.Is(err, services.ErrInvalidIdentifier):
		return newBadRequestError(services.ErrInvalidIdentifier.Error())
	case errors.Is(err, services.ErrInvalidArgument):
		return newBadRequestError(err.Error())
	case errors.Is(err, storage.ErrUnavailable):
		return newInternalServerError(storage.ErrUnavailable.Error())
	case errors.Is(err, storage.ErrTimeout):
		return newInternalServerError(storage.ErrTimeout.Error())
	case errors.Is(err, services.ErrInternal):
		return newInternalServerError(err.Error())
	default:
		return newStatusTextError(http.StatusInternalServerError)
	}
}
