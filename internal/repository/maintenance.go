package repository

import (
	"context"
	"fmt"

	"github.com/wanderlust-rentals/rental-service/internal/models"
	"gorm.io/gorm"
)

// MaintenanceRepository defines the interface for maintenance record data operations.
type MaintenanceRepository interface {
	Create(ctx context.Context, record *models.MaintenanceRecord) error
	FindByID(ctx context.Context, id string) (*models.MaintenanceRecord, error)
	List(ctx context.Context) ([]models.MaintenanceRecord, error)
	Update(ctx context.Context, record *models.MaintenanceRecord) error
	Delete(ctx context.Context, id string) error
}

type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new gorm-backed MaintenanceRepository instance.
func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) Create(ctx context.Context, record *models.MaintenanceRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create maintenance record %s: %w", record.Name, translateGormError(err))
	}
	return nil
}

func (r *maintenanceRepository) FindByID(ctx context.Context, id string) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to find maintenance record by id %s: %w", id, translateGormError(err))
	}
	return &record, nil
}

func (r *maintenanceRepository) List(ctx context.Context) ([]models.MaintenanceRecord, error) {
	var records []models.MaintenanceRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	return records, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, record *models.MaintenanceRecord) error {
	result := r.db.WithContext(ctx).Model(record).Select("*").Omit("ID", "CreatedAt").Updates(record)
	if result.Error != nil {
		return fmt.Errorf("failed to update maintenance record id %s: %w", record.ID, translateGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update maintenance record id %s: %w", record.ID, ErrNotFound)
	}
	return nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MaintenanceRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete maintenance record id %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete maintenance record id %s: %w", id, ErrNotFound)
	}
	return nil
}
