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

const vehiclesCollection = "vehiclemanagements"

type mongoVehicleRepository struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepository creates a VehicleRepository backed by a MongoDB collection.
func NewMongoVehicleRepository(db *mongo.Database) VehicleRepository {
	return &mongoVehicleRepository{coll: db.Collection(vehiclesCollection)}
}

// EnsureVehicleIndexes creates the unique vehicle_number index and the listing filters.
func EnsureVehicleIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(vehiclesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "vehicle_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vehicle_type", Value: 1}}},
		{Keys: bson.D{{Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "daily_rate", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create vehicle indexes: %w", err)
	}
	return nil
}

func (r *mongoVehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	now := time.Now().UTC()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, vehicle); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to create vehicle %s: %w", vehicle.VehicleNumber, ErrDuplicate)
		}
		return fmt.Errorf("failed to create vehicle %s: %w", vehicle.VehicleNumber, err)
	}
	return nil
}

func (r *mongoVehicleRepository) FindByID(ctx context.Context, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			err = ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle by id %s: %w", id, err)
	}
	return &vehicle, nil
}

func (r *mongoVehicleRepository) ExistsByNumber(ctx context.Context, vehicleNumber string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"vehicle_number": vehicleNumber})
	if err != nil {
		return false, fmt.Errorf("failed to count vehicles with number %s: %w", vehicleNumber, err)
	}
	return count > 0, nil
}

func (r *mongoVehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *mongoVehicleRepository) Update(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.UpdatedAt = time.Now().UTC()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": vehicle.ID}, vehicle)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			err = ErrDuplicate
		}
		return fmt.Errorf("failed to update vehicle id %s: %w", vehicle.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("failed to update vehicle id %s: %w", vehicle.ID, ErrNotFound)
	}
	return nil
}

func (r *mongoVehicleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("failed to delete vehicle id %s: %w", id, ErrNotFound)
	}
	return nil
}
