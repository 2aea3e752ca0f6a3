package users

import (
	"context"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rescuerush/rescuerush/services/users UserRepo

// UserRepo is the persistence surface for user documents.
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	ReplaceContacts(ctx context.Context, userID string, contacts []models.EmergencyContact) error
	AppendLocation(ctx context.Context, userID string, point models.LocationPoint) error
	SetPushToken(ctx context.Context, userID, token string) error
}
