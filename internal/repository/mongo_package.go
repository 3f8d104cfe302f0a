package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wanderlust-rentals/rental-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const packagesCollection = "packages"

type mongoPackageRepository struct {
	coll *mongo.Collection
}

// NewMongoPackageRepository creates a PackageRepository backed by a MongoDB collection.
func NewMongoPackageRepository(db *mongo.Database) PackageRepository {
	return &mongoPackageRepository{coll: db.Collection(packagesCollection)}
}

// EnsurePackageIndexes creates the unique package_id index.
func EnsurePackageIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(packagesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "package_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create package indexes: %w", err)
	}
	return nil
}

func (r *mongoPackageRepository) Create(ctx context.Context, pkg *models.Package) error {
	now := time.Now().UTC()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, pkg); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to create package %d: %w", pkg.PackageID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create package %d: %w", pkg.PackageID, err)
	}
	return nil
}

func (r *mongoPackageRepository) FindByID(ctx context.Context, id string) (*models.Package, error) {
	var pkg models.Package
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			err = ErrNotFound
		}
		return nil, fmt.Errorf("failed to find package by id %s: %w", id, err)
	}
	return &pkg, nil
}

func (r *mongoPackageRepository) ExistsByPackageID(ctx context.Context, packageID int64) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"package_id": packageID})
	if err != nil {
		return false, fmt.Errorf("failed to count packages with package_id %d: %w", packageID, err)
	}
	return count > 0, nil
}

func (r *mongoPackageRepository) List(ctx context.Context) ([]models.Package, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "package_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	var pkgs []models.Package
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return pkgs, nil
}

func (r *mongoPackageRepository) Update(ctx context.Context, pkg *models.Package) error {
	pkg.UpdatedAt = time.Now().UTC()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": pkg.ID}, pkg)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			err = ErrDuplicate
		}
		return fmt.Errorf("failed to update package id %s: %w", pkg.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("failed to update package id %s: %w", pkg.ID, ErrNotFound)
	}
	return nil
}

func (r *mongoPackageRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete package id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("failed to delete package id %s: %w", id, ErrNotFound)
	}
	return nil
}
