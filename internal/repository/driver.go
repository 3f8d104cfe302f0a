package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/wanderlust-rentals/rental-service/internal/models"
	"gorm.io/gorm"
)

// DriverRepository defines the interface for driver data operations.
type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	FindByID(ctx context.Context, id string) (*models.Driver, error)
	// List returns one page of matching drivers newest first, and the total match count.
	List(ctx context.Context, query models.DriverQuery) ([]models.Driver, int64, error)
	Update(ctx context.Context, driver *models.Driver) error
	Delete(ctx context.Context, id string) error
}

type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository creates a new gorm-backed DriverRepository instance.
func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, driver *models.Driver) error {
	if err := r.db.WithContext(ctx).Create(driver).Error; err != nil {
		return fmt.Errorf("failed to create driver %d: %w", driver.DriverID, translateGormError(err))
	}
	return nil
}

func (r *driverRepository) FindByID(ctx context.Context, id string) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&driver).Error; err != nil {
		return nil, fmt.Errorf("failed to find driver by id %s: %w", id, translateGormError(err))
	}
	return &driver, nil
}

func (r *driverRepository) List(ctx context.Context, query models.DriverQuery) ([]models.Driver, int64, error) {
	filtered := r.db.WithContext(ctx).Model(&models.Driver{})
	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		cond := r.db.Where("full_name ILIKE ?", pattern).Or("email ILIKE ?", pattern)
		if driverID, err := strconv.ParseInt(search, 10, 64); err == nil {
			cond = cond.Or("driver_id = ?", driverID)
		}
		filtered = filtered.Where(cond)
	}

	var total int64
	if err := filtered.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count drivers: %w", err)
	}

	var drivers []models.Driver
	err := filtered.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&drivers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, total, nil
}

func (r *driverRepository) Update(ctx context.Context, driver *models.Driver) error {
	result := r.db.WithContext(ctx).Model(driver).Select("*").Omit("ID", "CreatedAt").Updates(driver)
	if result.Error != nil {
		return fmt.Errorf("failed to update driver id %s: %w", driver.ID, translateGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update driver id %s: %w", driver.ID, ErrNotFound)
	}
	return nil
}

func (r *driverRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Driver{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete driver id %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete driver id %s: %w", id, ErrNotFound)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
