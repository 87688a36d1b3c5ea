package handlers

import (
	"errors"
	"net/http"

	"github.com/devmatch/devmatch-go/internal/application"
	"github.com/devmatch/devmatch-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// respondError maps service sentinels to HTTP statuses. Callers only ever see
// the uniform {error: ...} shape.
func respondError(c *gin.Context, err error) {
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: verr.Error()})
		return
	}

	switch {
	case errors.Is(err, application.ErrRequestNotFound),
		errors.Is(err, application.ErrMatchNotFound),
		errors.Is(err, application.ErrProfileNotFound),
		errors.Is(err, application.ErrNotificationNotFound),
		errors.Is(err, application.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrNotOwner),
		errors.Is(err, application.ErrWrongRole),
		errors.Is(err, application.ErrNotParticipant):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrRequestTerminal),
		errors.Is(err, application.ErrRequestClosed),
		errors.Is(err, application.ErrMatchNotPending),
		errors.Is(err, application.ErrConflict):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrRateTooHigh):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrUsernameTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
