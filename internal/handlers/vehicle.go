package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/service"
)

// VehicleHandler handles fleet vehicle HTTP requests.
type VehicleHandler struct {
	vehicleService service.VehicleService
	log            *slog.Logger
}

// NewVehicleHandler creates a new VehicleHandler instance.
func NewVehicleHandler(vehicleService service.VehicleService, log *slog.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		log:            log,
	}
}

// VehicleResponse wraps a created or updated vehicle.
type VehicleResponse struct {
	Error   bool            `json:"error" example:"false"`
	Message string          `json:"message"`
	Vehicle *models.Vehicle `json:"vehicle"`
}

// CreateVehicle godoc
// @Summary Add vehicle
// @Description Add a vehicle to the rental fleet (admin only)
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.VehicleInput true "Vehicle"
// @Success 201 {object} VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	log := h.log.With("op", "handlers.CreateVehicle")

	var req service.VehicleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.MsgVehicleFieldsRequired)
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), req)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	log.Info("vehicle created", "id", vehicle.ID, "vehicle_number", vehicle.VehicleNumber)
	c.JSON(http.StatusCreated, VehicleResponse{Message: service.MsgVehicleCreated, Vehicle: vehicle})
}

// ListVehicles godoc
// @Summary List vehicles
// @Description Return the rental fleet, newest first
// @Tags vehicles
// @Produce json
// @Success 200 {array} models.Vehicle
// @Failure 500 {object} ErrorResponse
// @Router /api/vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.List(c.Request.Context())
	if err != nil {
		respondAppError(c, h.log.With("op", "handlers.ListVehicles"), err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetVehicle godoc
// @Summary Get vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle record ID"
// @Success 200 {object} models.Vehicle
// @Failure 404 {object} ErrorResponse
// @Router /api/vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.vehicleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAppError(c, h.log.With("op", "handlers.GetVehicle"), err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// UpdateVehicle godoc
// @Summary Update vehicle
// @Description Partially update a vehicle; absent fields are unchanged (admin only)
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Vehicle record ID"
// @Param request body service.VehicleInput true "Fields to change"
// @Success 200 {object} VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	log := h.log.With("op", "handlers.UpdateVehicle")

	var req service.VehicleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, VehicleResponse{Message: service.MsgVehicleUpdated, Vehicle: vehicle})
}

// DeleteVehicle godoc
// @Summary Delete vehicle
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vehicle record ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	log := h.log.With("op", "handlers.DeleteVehicle")
	id := c.Param("id")

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		respondAppError(c, log, err)
		return
	}

	log.Info("vehicle deleted", "id", id)
	respondMessage(c, http.StatusOK, service.MsgVehicleDeleted)
}
