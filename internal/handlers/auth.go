// Package handlers contains HTTP request handlers for the rental service.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderlust-rentals/rental-service/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	log         *slog.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// RegisterRequest represents the account creation payload.
type RegisterRequest struct {
	FullName string `json:"fullName" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"secret123"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"secret123"`
}

// ForgotPasswordRequest represents the reset link request payload.
type ForgotPasswordRequest struct {
	Email string `json:"email" example:"jane@example.com"`
}

// ResetPasswordRequest represents the password reset payload.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword" example:"newsecret123"`
}

// UserSummary is the public projection of a user returned by auth endpoints.
type UserSummary struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
}

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	Error       bool        `json:"error" example:"false"`
	User        UserSummary `json:"user"`
	AccessToken string      `json:"accessToken"`
	Message     string      `json:"message"`
}

// ResetPasswordResponse is returned by a successful password reset.
type ResetPasswordResponse struct {
	Error       bool   `json:"error" example:"false"`
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}

// Register godoc
// @Summary Create account
// @Description Register a new user and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /create-account [post]
func (h *AuthHandler) Register(c *gin.Context) {
	log := h.log.With("op", "handlers.Register")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.MsgAllFieldsRequired)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		User: UserSummary{
			FullName: result.User.FullName,
			Email:    result.User.Email,
		},
		AccessToken: result.AccessToken,
		Message:     service.MsgAccountCreated,
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate with email and password and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	log := h.log.With("op", "handlers.Login")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.MsgAllFieldsRequired)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		User: UserSummary{
			FullName: result.User.FullName,
			Email:    result.User.Email,
			Role:     result.User.Role,
		},
		AccessToken: result.AccessToken,
		Message:     service.MsgLoginSuccessful,
	})
}

// ForgotPassword godoc
// @Summary Request password reset
// @Description Email a single-use reset link. The response does not reveal whether the email is registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	log := h.log.With("op", "handlers.ForgotPassword")

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.MsgEmailRequired)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondAppError(c, log, err)
		return
	}

	respondMessage(c, http.StatusOK, service.MsgResetLinkSent)
}

// ResetPassword godoc
// @Summary Reset password
// @Description Consume a reset token, set a new password and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} ResetPasswordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	log := h.log.With("op", "handlers.ResetPassword")

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.MsgResetFieldsRequired)
		return
	}

	accessToken, err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ResetPasswordResponse{
		AccessToken: accessToken,
		Message:     service.MsgPasswordResetComplete,
	})
}
