package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wanderlust-rentals/rental-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const driversCollection = "drivers"

type mongoDriverRepository struct {
	coll *mongo.Collection
}

// NewMongoDriverRepository creates a DriverRepository backed by a MongoDB collection.
func NewMongoDriverRepository(db *mongo.Database) DriverRepository {
	return &mongoDriverRepository{coll: db.Collection(driversCollection)}
}

// EnsureDriverIndexes creates the unique driver_id and email indexes.
func EnsureDriverIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(driversCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "driver_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create driver indexes: %w", err)
	}
	return nil
}

func (r *mongoDriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	now := time.Now().UTC()
	driver.CreatedAt = now
	driver.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, driver); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to create driver %d: %w", driver.DriverID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create driver %d: %w", driver.DriverID, err)
	}
	return nil
}

func (r *mongoDriverRepository) FindByID(ctx context.Context, id string) (*models.Driver, error) {
	var driver models.Driver
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&driver); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			err = ErrNotFound
		}
		return nil, fmt.Errorf("failed to find driver by id %s: %w", id, err)
	}
	return &driver, nil
}

func (r *mongoDriverRepository) List(ctx context.Context, query models.DriverQuery) ([]models.Driver, int64, error) {
	filter := driverFilter(query.Search)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count drivers: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(query.Offset)).
		SetLimit(int64(query.Limit))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list drivers: %w", err)
	}

	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, 0, fmt.Errorf("failed to decode drivers: %w", err)
	}
	return drivers, total, nil
}

// driverFilter matches name or email as a literal case-insensitive substring,
// or driver_id exactly when search is numeric.
func driverFilter(search string) bson.M {
	search = strings.TrimSpace(search)
	if search == "" {
		return bson.M{}
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	or := bson.A{
		bson.M{"full_name": pattern},
		bson.M{"email": pattern},
	}
	if driverID, err := strconv.ParseInt(search, 10, 64); err == nil {
		or = append(or, bson.M{"driver_id": driverID})
	}
	return bson.M{"$or": or}
}

func (r *mongoDriverRepository) Update(ctx context.Context, driver *models.Driver) error {
	driver.UpdatedAt = time.Now().UTC()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": driver.ID}, driver)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			err = ErrDuplicate
		}
		return fmt.Errorf("failed to update driver id %s: %w", driver.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("failed to update driver id %s: %w", driver.ID, ErrNotFound)
	}
	return nil
}

func (r *mongoDriverRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete driver id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("failed to delete driver id %s: %w", id, ErrNotFound)
	}
	return nil
}
