package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/service"
)

// PackageHandler handles rental package HTTP requests.
type PackageHandler struct {
	packageService service.PackageService
	log            *slog.Logger
}

// NewPackageHandler creates a new PackageHandler instance.
func NewPackageHandler(packageService service.PackageService, log *slog.Logger) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
		log:            log,
	}
}

// PackageResponse wraps a created or updated package.
type PackageResponse struct {
	Error   bool            `json:"error" example:"false"`
	Message string          `json:"message"`
	Package *models.Package `json:"package"`
}

// CreatePackage godoc
// @Summary Create package
// @Description Create a rental package (admin only)
// @Tags packages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.PackageInput true "Package"
// @Success 201 {object} PackageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	log := h.log.With("op", "handlers.CreatePackage")

	var req service.PackageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.MsgPackageFieldsRequired)
		return
	}

	pkg, err := h.packageService.Create(c.Request.Context(), req)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	log.Info("package created", "id", pkg.ID, "package_id", pkg.PackageID)
	c.JSON(http.StatusCreated, PackageResponse{Message: service.MsgPackageCreated, Package: pkg})
}

// ListPackages godoc
// @Summary List packages
// @Description Return every rental package ordered by package ID
// @Tags packages
// @Produce json
// @Success 200 {array} models.Package
// @Failure 500 {object} ErrorResponse
// @Router /api/packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	pkgs, err := h.packageService.List(c.Request.Context())
	if err != nil {
		respondAppError(c, h.log.With("op", "handlers.ListPackages"), err)
		return
	}

	c.JSON(http.StatusOK, pkgs)
}

// GetPackage godoc
// @Summary Get package
// @Tags packages
// @Produce json
// @Param id path string true "Package record ID"
// @Success 200 {object} models.Package
// @Failure 404 {object} ErrorResponse
// @Router /api/packages/{id} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	pkg, err := h.packageService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAppError(c, h.log.With("op", "handlers.GetPackage"), err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// UpdatePackage godoc
// @Summary Update package
// @Description Partially update a rental package; absent fields are unchanged (admin only)
// @Tags packages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Package record ID"
// @Param request body service.PackageInput true "Fields to change"
// @Success 200 {object} PackageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/packages/{id} [put]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	log := h.log.With("op", "handlers.UpdatePackage")

	var req service.PackageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	pkg, err := h.packageService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondAppError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, PackageResponse{Message: service.MsgPackageUpdated, Package: pkg})
}

// DeletePackage godoc
// @Summary Delete package
// @Tags packages
// @Security BearerAuth
// @Produce json
// @Param id path string true "Package record ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	log := h.log.With("op", "handlers.DeletePackage")
	id := c.Param("id")

	if err := h.packageService.Delete(c.Request.Context(), id); err != nil {
		respondAppError(c, log, err)
		return
	}

	log.Info("package deleted", "id", id)
	respondMessage(c, http.StatusOK, service.MsgPackageDeleted)
}

// PackageReport godoc
// @Summary Package report
// @Description Aggregate pricing, feature and type statistics over all packages
// @Tags packages
// @Produce json
// @Success 200 {object} service.Report
// @Failure 500 {object} ErrorResponse
// @Router /api/packages/report [get]
func (h *PackageHandler) PackageReport(c *gin.Context) {
	report, err := h.packageService.Report(c.Request.Context())
	if err != nil {
		respondAppError(c, h.log.With("op", "handlers.PackageReport"), err)
		return
	}

	c.JSON(http.StatusOK, report)
}
