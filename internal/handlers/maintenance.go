package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/service"
)

// MaintenanceHandler handles vehicle maintenance and prediction HTTP requests.
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceService
	log                *slog.Logger
}

// NewMaintenanceHandler creates a new MaintenanceHandler instance.
func NewMaintenanceHandler(maintenanceService service.MaintenanceService, log *slog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		log:                log,
	}
}

// MaintenanceResponse wraps a maintenance record.
type MaintenanceResponse struct {
	Error   bool                      `json:"error" example:"false"`
	Message string                    `json:"message"`
	Vehicle *models.MaintenanceRecord `json:"vehicle"`
}

// PredictionResponse is returned by a successful prediction.
type PredictionResponse struct {
	Error      bool                          `json:"error" example:"false"`
	Message    string                        `json:"message"`
	Prediction *models.MaintenancePrediction `json:"prediction"`
	Vehicle    *models.MaintenanceRecord     `json:"vehicle"`
}

// CreateRecord godoc
// @Summary Add maintenance record
// @Description Track a vehicle's condition readings (admin only)
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.MaintenanceInput true "Readings"
// @Success 201 {object} MaintenanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/vehiclesPred [post]
func (h *MaintenanceHandler) CreateRecord(c *gin.Context) {
	log := h.log.With("op", "handlers.CreateRecord")

	var req service.MaintenanceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.MsgMaintenanceFieldsRequired)
		return
	}

	record, err := h.maintenanceService.Create(c.Request.Context(), req)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	log.Info("maintenance record created", "id", record.ID)
	c.JSON(http.StatusCreated, MaintenanceResponse{Message: service.MsgMaintenanceCreated, Vehicle: record})
}

// ListRecords godoc
// @Summary List maintenance records
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.MaintenanceRecord
// @Failure 500 {object} ErrorResponse
// @Router /api/vehiclesPred [get]
func (h *MaintenanceHandler) ListRecords(c *gin.Context) {
	records, err := h.maintenanceService.List(c.Request.Context())
	if err != nil {
		respondAppError(c, h.log.With("op", "handlers.ListRecords"), err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetRecord godoc
// @Summary Get maintenance record
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Param id path string true "Maintenance record ID"
// @Success 200 {object} models.MaintenanceRecord
// @Failure 404 {object} ErrorResponse
// @Router /api/vehiclesPred/{id} [get]
func (h *MaintenanceHandler) GetRecord(c *gin.Context) {
	record, err := h.maintenanceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAppError(c, h.log.With("op", "handlers.GetRecord"), err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateRecord godoc
// @Summary Update maintenance record
// @Description Partially update readings; absent fields are unchanged (admin only)
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Maintenance record ID"
// @Param request body service.MaintenanceInput true "Fields to change"
// @Success 200 {object} MaintenanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vehiclesPred/{id} [put]
func (h *MaintenanceHandler) UpdateRecord(c *gin.Context) {
	log := h.log.With("op", "handlers.UpdateRecord")

	var req service.MaintenanceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	record, err := h.maintenanceService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, MaintenanceResponse{Message: service.MsgMaintenanceUpdated, Vehicle: record})
}

// DeleteRecord godoc
// @Summary Delete maintenance record
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Param id path string true "Maintenance record ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vehiclesPred/{id} [delete]
func (h *MaintenanceHandler) DeleteRecord(c *gin.Context) {
	log := h.log.With("op", "handlers.DeleteRecord")
	id := c.Param("id")

	if err := h.maintenanceService.Delete(c.Request.Context(), id); err != nil {
		respondAppError(c, log, err)
		return
	}

	log.Info("maintenance record deleted", "id", id)
	respondMessage(c, http.StatusOK, service.MsgMaintenanceDeleted)
}

// Predict godoc
// @Summary Predict next service
// @Description Send the record's readings to the prediction service and store its verdict (admin only)
// @Tags maintenance
// @Security BearerAuth
// @Produce json
// @Param id path string true "Maintenance record ID"
// @Success 200 {object} PredictionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/vehiclesPred/{id}/predict [post]
func (h *MaintenanceHandler) Predict(c *gin.Context) {
	log := h.log.With("op", "handlers.Predict")
	id := c.Param("id")

	record, err := h.maintenanceService.Predict(c.Request.Context(), id)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	log.Info("prediction saved", "id", id, "status", record.Prediction.Status)
	c.JSON(http.StatusOK, PredictionResponse{
		Message:    service.MsgPredictionSaved,
		Prediction: record.Prediction,
		Vehicle:    record,
	})
}
