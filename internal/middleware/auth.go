package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wanderlust-rentals/rental-service/internal/apperr"
	"github.com/wanderlust-rentals/rental-service/internal/logger"
	"github.com/wanderlust-rentals/rental-service/internal/service"
)

// ContextKeyUserID is the gin context key holding the authenticated user id.
const ContextKeyUserID = "userId"

// Authentication failure messages.
const (
	MsgNoToken      = "Authentication required. No token provided."
	MsgBadFormat    = "Authentication required. Invalid token format."
	MsgTokenExpired = "Authentication token expired. Please login again."
	MsgInvalidToken = "Authentication failed. Invalid token."
)

// TokenValidator verifies session tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*service.Claims, error)
}

// AdminChecker reports whether a user may use admin routes.
type AdminChecker interface {
	RequireAdmin(ctx context.Context, userID string) error
}

// Authenticate returns middleware that requires a valid bearer token and stores its user id.
func Authenticate(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			abort(c, http.StatusUnauthorized, MsgNoToken)
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			abort(c, http.StatusUnauthorized, MsgBadFormat)
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				abort(c, http.StatusUnauthorized, MsgTokenExpired)
				return
			}
			abort(c, http.StatusUnauthorized, MsgInvalidToken)
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// RequireAdmin returns middleware that lets only admins through. It must run after Authenticate.
func RequireAdmin(checker AdminChecker, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			abort(c, http.StatusUnauthorized, MsgNoToken)
			return
		}

		if err := checker.RequireAdmin(c.Request.Context(), userID); err != nil {
			appErr := apperr.As(err)
			switch appErr.Kind {
			case apperr.KindForbidden:
				abort(c, http.StatusForbidden, appErr.Message)
			case apperr.KindAuth:
				abort(c, http.StatusUnauthorized, MsgInvalidToken)
			default:
				logger.LogError(log.With("user_id", userID), "admin check failed", err)
				abort(c, http.StatusInternalServerError, apperr.InternalMessage)
			}
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated user id stored by Authenticate.
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextKeyUserID)
	return id, id != ""
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": true, "message": message})
}
