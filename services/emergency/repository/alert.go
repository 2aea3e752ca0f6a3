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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AlertRepository persists emergency alert documents.
type AlertRepository struct {
	cfg    *models.Config
	alerts *mongo.Collection
}

// NewAlertRepository creates a repository bound to the alerts collection.
func NewAlertRepository(cfg *models.Config, db *database.MongoClient) *AlertRepository {
	return &AlertRepository{
		cfg:    cfg,
		alerts: db.Collection(database.CollectionAlerts),
	}
}

// CreateAlert inserts a new alert document and backfills the generated ID.
func (r *AlertRepository) CreateAlert(ctx context.Context, alert *models.EmergencyAlert) error {
	now := time.Now()
	alert.CreatedAt = now
	alert.UpdatedAt = now
	if alert.Evidence == nil {
		alert.Evidence = []models.Evidence{}
	}
	if alert.Responders == nil {
		alert.Responders = []models.Responder{}
	}

	res, err := r.alerts.InsertOne(ctx, alert)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		alert.ID = oid
	}
	return nil
}

// GetAlertByID fetches one alert by its hex ObjectID.
func (r *AlertRepository) GetAlertByID(ctx context.Context, id string) (*models.EmergencyAlert, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("Alert not found")
	}

	var alert models.EmergencyAlert
	if err := r.alerts.FindOne(ctx, bson.M{"_id": oid}).Decode(&alert); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Alert not found")
		}
		return nil, err
	}
	return &alert, nil
}

// ListAlertsByUser returns a user's alerts newest first, bounded by limit.
func (r *AlertRepository) ListAlertsByUser(ctx context.Context, userID string, limit int64) ([]models.EmergencyAlert, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.NotFound("User not found")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.alerts.Find(ctx, bson.M{"userId": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	alerts := []models.EmergencyAlert{}
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// UpdateStatus transitions an alert's lifecycle state. CancelledAt is set
// only when provided so resolve does not overwrite a prior cancel stamp.
func (r *AlertRepository) UpdateStatus(ctx context.Context, id string, status models.AlertStatus, cancelledAt *time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("Alert not found")
	}

	set := bson.M{"status": status, "updated_at": time.Now()}
	if cancelledAt != nil {
		set["cancelledAt"] = *cancelledAt
	}

	res, err := r.alerts.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("Alert not found")
	}
	return nil
}

// RecordResponders overwrites the alert's responder list with the
// contacts a dispatch run reached.
func (r *AlertRepository) RecordResponders(ctx context.Context, id string, responders []models.Responder) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("Alert not found")
	}
	if responders == nil {
		responders = []models.Responder{}
	}

	res, err := r.alerts.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"responders": responders, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("Alert not found")
	}
	return nil
}

// AppendEvidence pushes one evidence item onto the alert document.
func (r *AlertRepository) AppendEvidence(ctx context.Context, alertID string, evidence models.Evidence) error {
	oid, err := primitive.ObjectIDFromHex(alertID)
	if err != nil {
		return apperrors.NotFound("Alert not found")
	}

	res, err := r.alerts.UpdateByID(ctx, oid, bson.M{
		"$push": bson.M{"evidence": evidence},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("Alert not found")
	}
	return nil
}

// RemoveEvidence pulls one evidence item by id.
func (r *AlertRepository) RemoveEvidence(ctx context.Context, alertID, evidenceID string) error {
	oid, err := primitive.ObjectIDFromHex(alertID)
	if err != nil {
		return apperrors.NotFound("Alert not found")
	}

	res, err := r.alerts.UpdateByID(ctx, oid, bson.M{
		"$pull": bson.M{"evidence": bson.M{"id": evidenceID}},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("Alert not found")
	}
	return nil
}
