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

const usersCollection = "users"

type mongoUserRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

// NewMongoUserRepository creates a UserRepository backed by a MongoDB collection.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{db: db, coll: db.Collection(usersCollection)}
}

// EnsureUserIndexes creates the unique email index and the reset token lookup index.
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "resetPasswordToken", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.findOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, err := r.findOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id %s: %w", id, err)
	}
	return user, nil
}

func (r *mongoUserRepository) FindByResetToken(ctx context.Context, digest string, now time.Time) (*models.User, error) {
	user, err := r.findOne(ctx, bson.M{
		"resetPasswordToken":   digest,
		"resetPasswordExpires": bson.M{"$gt": now},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find user by reset token: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepository) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdOn", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	if user.CreatedOn.IsZero() {
		user.CreatedOn = now
	}
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to create user: %w", ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()
	return r.update(ctx, user.ID, "update profile", bson.M{
		"fullName":       user.FullName,
		"profileImage":   user.ProfileImage,
		"dateofBirth":    user.DateOfBirth,
		"gender":         user.Gender,
		"phoneNumber":    user.PhoneNumber,
		"nic":            user.NIC,
		"address":        user.Address,
		"bio":            user.Bio,
		"travelstyle":    user.TravelStyle,
		"travelbudget":   user.TravelBudget,
		"travelinterest": user.TravelInterest,
		"updatedAt":      user.UpdatedAt,
	})
}

func (r *mongoUserRepository) SetResetToken(ctx context.Context, id, digest string, expiresAt time.Time) error {
	return r.update(ctx, id, "set reset token", bson.M{
		"resetPasswordToken":   digest,
		"resetPasswordExpires": expiresAt,
		"updatedAt":            time.Now().UTC(),
	})
}

func (r *mongoUserRepository) ClearResetToken(ctx context.Context, id string) error {
	return r.update(ctx, id, "clear reset token", bson.M{
		"resetPasswordToken":   nil,
		"resetPasswordExpires": nil,
		"updatedAt":            time.Now().UTC(),
	})
}

func (r *mongoUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.update(ctx, id, "update password", bson.M{
		"password":             passwordHash,
		"resetPasswordToken":   nil,
		"resetPasswordExpires": nil,
		"updatedAt":            time.Now().UTC(),
	})
}

func (r *mongoUserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("failed to delete user id %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *mongoUserRepository) Ping(ctx context.Context) error {
	if err := r.db.Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) update(ctx context.Context, id, action string, set bson.M) error {
	result, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to %s for user id %s: %w", action, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("failed to %s for user id %s: %w", action, id, ErrNotFound)
	}
	return nil
}
