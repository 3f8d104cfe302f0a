package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/service"
)

// MsgInvalidQuery is returned when listing parameters cannot be parsed.
const MsgInvalidQuery = "Invalid query parameters"

// DriverHandler handles chauffeur HTTP requests.
type DriverHandler struct {
	driverService service.DriverService
	log           *slog.Logger
}

// NewDriverHandler creates a new DriverHandler instance.
func NewDriverHandler(driverService service.DriverService, log *slog.Logger) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
		log:           log,
	}
}

// DriverListQuery holds the driver listing query string.
type DriverListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Search string `form:"search"`
}

// DriverResponse wraps a single driver.
type DriverResponse struct {
	Error   bool           `json:"error" example:"false"`
	Message string         `json:"message,omitempty"`
	Data    *models.Driver `json:"data"`
}

// CreateDriver godoc
// @Summary Add driver
// @Description Register a chauffeur (admin only)
// @Tags drivers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.DriverInput true "Driver"
// @Success 201 {object} DriverResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/driver [post]
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	log := h.log.With("op", "handlers.CreateDriver")

	var req service.DriverInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	driver, err := h.driverService.Create(c.Request.Context(), req)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	log.Info("driver created", "id", driver.ID, "driver_id", driver.DriverID)
	c.JSON(http.StatusCreated, DriverResponse{Message: service.MsgDriverCreated, Data: driver})
}

// ListDrivers godoc
// @Summary List drivers
// @Description Page through chauffeurs newest first, optionally filtered by name, email or driver ID (admin only)
// @Tags drivers
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Name, email or driver ID"
// @Success 200 {object} service.DriverPage
// @Failure 400 {object} ErrorResponse
// @Router /api/driver [get]
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	log := h.log.With("op", "handlers.ListDrivers")

	var query DriverListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, MsgInvalidQuery)
		return
	}

	page, err := h.driverService.List(c.Request.Context(), service.DriverListParams(query))
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetDriver godoc
// @Summary Get driver
// @Tags drivers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Driver record ID"
// @Success 200 {object} DriverResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/driver/{id} [get]
func (h *DriverHandler) GetDriver(c *gin.Context) {
	driver, err := h.driverService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAppError(c, h.log.With("op", "handlers.GetDriver"), err)
		return
	}

	c.JSON(http.StatusOK, DriverResponse{Data: driver})
}

// UpdateDriver godoc
// @Summary Update driver
// @Description Partially update a chauffeur; absent fields are unchanged (admin only)
// @Tags drivers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Driver record ID"
// @Param request body service.DriverInput true "Fields to change"
// @Success 200 {object} DriverResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/driver/{id} [put]
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	log := h.log.With("op", "handlers.UpdateDriver")

	var req service.DriverInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	driver, err := h.driverService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, DriverResponse{Message: service.MsgDriverUpdated, Data: driver})
}

// DeleteDriver godoc
// @Summary Delete driver
// @Tags drivers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Driver record ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/driver/{id} [delete]
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	log := h.log.With("op", "handlers.DeleteDriver")
	id := c.Param("id")

	if err := h.driverService.Delete(c.Request.Context(), id); err != nil {
		respondAppError(c, log, err)
		return
	}

	log.Info("driver deleted", "id", id)
	respondMessage(c, http.StatusOK, service.MsgDriverDeleted)
}
