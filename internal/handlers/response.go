package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/wanderlust-rentals/rental-service/internal/apperr"
	"github.com/wanderlust-rentals/rental-service/internal/logger"
)

// MsgInvalidBody is returned when a request body cannot be decoded.
const MsgInvalidBody = "Invalid request body"

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message"`
}

// MessageResponse is the envelope for successful requests that return only a message.
type MessageResponse struct {
	Error   bool   `json:"error" example:"false"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: true, Message: message})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

// respondAppError renders err with the status of its kind. Server-side failures are logged
// and only their client-safe message is returned.
func respondAppError(c *gin.Context, log *slog.Logger, err error) {
	appErr := apperr.As(err)
	status := apperr.HTTPStatus(appErr.Kind)
	if status >= 500 {
		logger.LogError(log, "request failed", err)
	}
	respondError(c, status, appErr.Message)
}
