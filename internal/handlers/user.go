package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderlust-rentals/rental-service/internal/middleware"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/service"
)

// UserHandler handles user management HTTP requests.
type UserHandler struct {
	userService service.UserService
	log         *slog.Logger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// UserResponse wraps a single user.
type UserResponse struct {
	User    *models.User `json:"user"`
	Message string       `json:"message"`
}

// UsersResponse wraps the user list.
type UsersResponse struct {
	Users   []models.User `json:"users"`
	Message string        `json:"message"`
}

// UpdateProfileRequest carries profile fields and an optional target for admin edits.
type UpdateProfileRequest struct {
	models.ProfileUpdate
	TargetUserID string `json:"targetUserId"`
}

// GetCurrentUser godoc
// @Summary Current user
// @Description Return the authenticated user's profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /get-user [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	h.getUser(c, "handlers.GetCurrentUser", userID)
}

// GetUser godoc
// @Summary Get user
// @Description Return any user's profile (admin only)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /get-user/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	h.getUser(c, "handlers.GetUser", c.Param("userId"))
}

func (h *UserHandler) getUser(c *gin.Context, op, userID string) {
	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondAppError(c, h.log.With("op", op), err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: user})
}

// ListUsers godoc
// @Summary List users
// @Description Return every user (admin only)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} UsersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /get-users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondAppError(c, h.log.With("op", "handlers.ListUsers"), err)
		return
	}

	c.JSON(http.StatusOK, UsersResponse{Users: users, Message: service.MsgUsersFetched})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Update the caller's profile, or another user's when the caller is an admin
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/update-profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	log := h.log.With("op", "handlers.UpdateProfile")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	callerID, _ := middleware.UserID(c)
	user, err := h.userService.UpdateProfile(c.Request.Context(), callerID, req.TargetUserID, req.ProfileUpdate)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: user, Message: service.MsgProfileUpdated})
}

// DeleteUser godoc
// @Summary Delete user
// @Description Delete a user account (admin only)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/{userId} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	log := h.log.With("op", "handlers.DeleteUser")
	userID := c.Param("userId")

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondAppError(c, log, err)
		return
	}

	log.Info("user deleted", "user_id", userID)
	respondMessage(c, http.StatusOK, service.MsgUserDeleted)
}
