package repository

import (
	"context"
	"fmt"

	"github.com/wanderlust-rentals/rental-service/internal/models"
	"gorm.io/gorm"
)

// VehicleRepository defines the interface for fleet vehicle data operations.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	FindByID(ctx context.Context, id string) (*models.Vehicle, error)
	ExistsByNumber(ctx context.Context, vehicleNumber string) (bool, error)
	// List returns vehicles newest first.
	List(ctx context.Context) ([]models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id string) error
}

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new gorm-backed VehicleRepository instance.
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return fmt.Errorf("failed to create vehicle %s: %w", vehicle.VehicleNumber, translateGormError(err))
	}
	return nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to find vehicle by id %s: %w", id, translateGormError(err))
	}
	return &vehicle, nil
}

func (r *vehicleRepository) ExistsByNumber(ctx context.Context, vehicleNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Vehicle{}).Where("vehicle_number = ?", vehicleNumber).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count vehicles with number %s: %w", vehicleNumber, err)
	}
	return count > 0, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *models.Vehicle) error {
	result := r.db.WithContext(ctx).Model(vehicle).Select("*").Omit("ID", "CreatedAt").Updates(vehicle)
	if result.Error != nil {
		return fmt.Errorf("failed to update vehicle id %s: %w", vehicle.ID, translateGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update vehicle id %s: %w", vehicle.ID, ErrNotFound)
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Vehicle{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle id %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete vehicle id %s: %w", id, ErrNotFound)
	}
	return nil
}
