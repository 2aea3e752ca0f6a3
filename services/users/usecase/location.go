package usecase

import (
	"context"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/apperrors"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

// UpdateLocation appends a point to the user's location history. The
// repository caps the stored history to the newest MaxLocationHistory
// entries.
func (u *UserUC) UpdateLocation(ctx context.Context, userID string, req *models.LocationUpdateRequest) (*models.LocationPoint, error) {
	if req.Latitude == 0 && req.Longitude == 0 {
		return nil, apperrors.BadRequest("Latitude and longitude are required")
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return nil, apperrors.BadRequest("Coordinates are out of range")
	}

	if _, err := u.loadUser(ctx, userID); err != nil {
		return nil, err
	}

	point := models.LocationPoint{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		Timestamp: time.Now(),
	}

	if err := u.userRepo.AppendLocation(ctx, userID, point); err != nil {
		return nil, apperrors.Internal("Failed to save location", err)
	}

	logger.Debug("Location updated",
		logger.String("user_id", userID),
		logger.Float64("latitude", point.Latitude),
		logger.Float64("longitude", point.Longitude))

	return &point, nil
}

// RegisterPushToken stores the device push token used for mobile
// notifications.
func (u *UserUC) RegisterPushToken(ctx context.Context, userID string, req *models.PushTokenRequest) error {
	if req.PushToken == "" {
		return apperrors.BadRequest("Push token is required")
	}
	if _, err := u.loadUser(ctx, userID); err != nil {
		return err
	}
	if err := u.userRepo.SetPushToken(ctx, userID, req.PushToken); err != nil {
		return apperrors.Internal("Failed to save push token", err)
	}
	return nil
}
