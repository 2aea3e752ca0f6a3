package repository

import (
	"context"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/apperrors"
	"github.com/rescuerush/rescuerush/internal/pkg/database"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository persists user documents in the shared document store.
type UserRepository struct {
	cfg   *models.Config
	users *mongo.Collection
}

// NewUserRepository creates a repository bound to the users collection.
func NewUserRepository(cfg *models.Config, db *database.MongoClient) *UserRepository {
	return &UserRepository{
		cfg:   cfg,
		users: db.Collection(database.CollectionUsers),
	}
}

// CreateUser inserts a new user document and backfills the generated ID.
// A duplicate phone maps to a Conflict so a concurrent register on the
// unique index surfaces the same error as the pre-insert check.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.EmergencyContacts == nil {
		user.EmergencyContacts = []models.EmergencyContact{}
	}
	if user.LocationHistory == nil {
		user.LocationHistory = []models.LocationPoint{}
	}

	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("User already exists with this phone number")
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// GetUserByID fetches one user by its hex ObjectID.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("User not found")
	}

	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByPhone fetches one user by normalized phone number.
func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"phone": phone}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin records the most recent successful login time.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("User not found")
	}
	_, err = r.users.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"lastLogin": at, "updated_at": time.Now()},
	})
	return err
}

// ReplaceContacts overwrites the user's full emergency contact list.
func (r *UserRepository) ReplaceContacts(ctx context.Context, userID string, contacts []models.EmergencyContact) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.NotFound("User not found")
	}
	if contacts == nil {
		contacts = []models.EmergencyContact{}
	}
	res, err := r.users.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"emergencyContacts": contacts, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("User not found")
	}
	return nil
}

// AppendLocation pushes one point onto the history, keeping only the
// newest MaxLocationHistory entries.
func (r *UserRepository) AppendLocation(ctx context.Context, userID string, point models.LocationPoint) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.NotFound("User not found")
	}
	res, err := r.users.UpdateByID(ctx, oid, bson.M{
		"$push": bson.M{
			"locationHistory": bson.M{
				"$each":  []models.LocationPoint{point},
				"$slice": -models.MaxLocationHistory,
			},
		},
		"$set": bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("User not found")
	}
	return nil
}

// SetPushToken stores the device push token.
func (r *UserRepository) SetPushToken(ctx context.Context, userID, token string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.NotFound("User not found")
	}
	res, err := r.users.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"fcmToken": token, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("User not found")
	}
	return nil
}
