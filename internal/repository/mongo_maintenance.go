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

const maintenanceCollection = "vehicles"

type mongoMaintenanceRepository struct {
	coll *mongo.Collection
}

// NewMongoMaintenanceRepository creates a MaintenanceRepository backed by a MongoDB collection.
func NewMongoMaintenanceRepository(db *mongo.Database) MaintenanceRepository {
	return &mongoMaintenanceRepository{coll: db.Collection(maintenanceCollection)}
}

func (r *mongoMaintenanceRepository) Create(ctx context.Context, record *models.MaintenanceRecord) error {
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to create maintenance record %s: %w", record.Name, err)
	}
	return nil
}

func (r *mongoMaintenanceRepository) FindByID(ctx context.Context, id string) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			err = ErrNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance record by id %s: %w", id, err)
	}
	return &record, nil
}

func (r *mongoMaintenanceRepository) List(ctx context.Context) ([]models.MaintenanceRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}

	var records []models.MaintenanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode maintenance records: %w", err)
	}
	return records, nil
}

func (r *mongoMaintenanceRepository) Update(ctx context.Context, record *models.MaintenanceRecord) error {
	record.UpdatedAt = time.Now().UTC()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": record.ID}, record)
	if err != nil {
		return fmt.Errorf("failed to update maintenance record id %s: %w", record.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("failed to update maintenance record id %s: %w", record.ID, ErrNotFound)
	}
	return nil
}

func (r *mongoMaintenanceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete maintenance record id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("failed to delete maintenance record id %s: %w", id, ErrNotFound)
	}
	return nil
}
