package repository

import (
	"context"
	"fmt"

	"github.com/wanderlust-rentals/rental-service/internal/models"
	"gorm.io/gorm"
)

// PackageRepository defines the interface for rental package data operations.
type PackageRepository interface {
	Create(ctx context.Context, pkg *models.Package) error
	FindByID(ctx context.Context, id string) (*models.Package, error)
	ExistsByPackageID(ctx context.Context, packageID int64) (bool, error)
	List(ctx context.Context) ([]models.Package, error)
	Update(ctx context.Context, pkg *models.Package) error
	Delete(ctx context.Context, id string) error
}

type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new gorm-backed PackageRepository instance.
func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *models.Package) error {
	if err := r.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return fmt.Errorf("failed to create package %d: %w", pkg.PackageID, translateGormError(err))
	}
	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id string) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pkg).Error; err != nil {
		return nil, fmt.Errorf("failed to find package by id %s: %w", id, translateGormError(err))
	}
	return &pkg, nil
}

func (r *packageRepository) ExistsByPackageID(ctx context.Context, packageID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Package{}).Where("package_id = ?", packageID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count packages with package_id %d: %w", packageID, err)
	}
	return count > 0, nil
}

func (r *packageRepository) List(ctx context.Context) ([]models.Package, error) {
	var pkgs []models.Package
	if err := r.db.WithContext(ctx).Order("package_id ASC").Find(&pkgs).Error; err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return pkgs, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *models.Package) error {
	result := r.db.WithContext(ctx).Model(pkg).Select("*").Omit("ID", "CreatedAt").Updates(pkg)
	if result.Error != nil {
		return fmt.Errorf("failed to update package id %s: %w", pkg.ID, translateGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update package id %s: %w", pkg.ID, ErrNotFound)
	}
	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Package{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete package id %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete package id %s: %w", id, ErrNotFound)
	}
	return nil
}
