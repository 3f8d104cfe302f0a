// Package routes defines HTTP routes for the rental service.
package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/wanderlust-rentals/rental-service/docs"
	"github.com/wanderlust-rentals/rental-service/internal/config"
	"github.com/wanderlust-rentals/rental-service/internal/handlers"
	"github.com/wanderlust-rentals/rental-service/internal/metrics"
	"github.com/wanderlust-rentals/rental-service/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Auth        *handlers.AuthHandler
	User        *handlers.UserHandler
	Package     *handlers.PackageHandler
	Vehicle     *handlers.VehicleHandler
	Driver      *handlers.DriverHandler
	Maintenance *handlers.MaintenanceHandler
	Health      *handlers.HealthHandler
}

// Guards are the dependencies of the authentication middleware.
type Guards struct {
	Tokens middleware.TokenValidator
	Admins middleware.AdminChecker
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, cfg *config.Config, h Handlers, guards Guards, metricsCollector *metrics.Metrics, log *slog.Logger) {
	router.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: cfg.AllowedOrigins}))
	router.Use(middleware.Metrics(metricsCollector))

	// Health check
	router.GET("/health", h.Health.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(metricsCollector.Handler()))

	authenticated := middleware.Authenticate(guards.Tokens)
	adminOnly := middleware.RequireAdmin(guards.Admins, log)

	// Auth routes
	router.POST("/create-account", h.Auth.Register)
	router.POST("/login", h.Auth.Login)
	router.POST("/forgot-password", h.Auth.ForgotPassword)
	router.POST("/reset-password", h.Auth.ResetPassword)

	// User routes
	router.GET("/get-user", authenticated, h.User.GetCurrentUser)
	router.GET("/get-user/:userId", authenticated, adminOnly, h.User.GetUser)
	router.GET("/get-users", authenticated, adminOnly, h.User.ListUsers)
	router.PUT("/user/update-profile", authenticated, h.User.UpdateProfile)
	router.DELETE("/user/:userId", authenticated, adminOnly, h.User.DeleteUser)

	// Package routes
	packages := router.Group("/api/packages")
	{
		packages.GET("", h.Package.ListPackages)
		packages.GET("/report", h.Package.PackageReport)
		packages.GET("/:id", h.Package.GetPackage)
		packages.POST("", authenticated, adminOnly, h.Package.CreatePackage)
		packages.PUT("/:id", authenticated, adminOnly, h.Package.UpdatePackage)
		packages.DELETE("/:id", authenticated, adminOnly, h.Package.DeletePackage)
	}

	// Vehicle routes
	vehicles := router.Group("/api/vehicles")
	{
		vehicles.GET("", h.Vehicle.ListVehicles)
		vehicles.GET("/:id", h.Vehicle.GetVehicle)
		vehicles.POST("", authenticated, adminOnly, h.Vehicle.CreateVehicle)
		vehicles.PUT("/:id", authenticated, adminOnly, h.Vehicle.UpdateVehicle)
		vehicles.DELETE("/:id", authenticated, adminOnly, h.Vehicle.DeleteVehicle)
	}

	// Driver routes
	drivers := router.Group("/api/driver", authenticated, adminOnly)
	{
		drivers.GET("", h.Driver.ListDrivers)
		drivers.POST("", h.Driver.CreateDriver)
		drivers.GET("/:id", h.Driver.GetDriver)
		drivers.PUT("/:id", h.Driver.UpdateDriver)
		drivers.DELETE("/:id", h.Driver.DeleteDriver)
	}

	// Maintenance prediction routes
	maintenance := router.Group("/api/vehiclesPred", authenticated, adminOnly)
	{
		maintenance.GET("", h.Maintenance.ListRecords)
		maintenance.POST("", h.Maintenance.CreateRecord)
		maintenance.GET("/:id", h.Maintenance.GetRecord)
		maintenance.PUT("/:id", h.Maintenance.UpdateRecord)
		maintenance.DELETE("/:id", h.Maintenance.DeleteRecord)
		maintenance.POST("/:id/predict", h.Maintenance.Predict)
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
