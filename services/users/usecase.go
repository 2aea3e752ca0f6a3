package users

import (
	"context"

	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rescuerush/rescuerush/services/users UserUC

// UserUC is the user-facing usecase surface: auth, contact directory,
// location history, safe routes, and push-token registration.
type UserUC interface {
	// auth
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	VerifyToken(ctx context.Context, token string) (*models.UserSummary, error)

	// emergency contact directory
	ListContacts(ctx context.Context, userID string) ([]models.EmergencyContact, error)
	AddContact(ctx context.Context, userID string, req *models.AddContactRequest) (*models.EmergencyContact, error)
	UpdateContact(ctx context.Context, userID, contactID string, req *models.UpdateContactRequest) (*models.EmergencyContact, error)
	RemoveContact(ctx context.Context, userID, contactID string) error

	// location
	UpdateLocation(ctx context.Context, userID string, req *models.LocationUpdateRequest) (*models.LocationPoint, error)
	SafeRoutes(ctx context.Context, userID string, req *models.SafeRoutesRequest) ([]models.SafeRoute, error)

	// notifications
	RegisterPushToken(ctx context.Context, userID string, req *models.PushTokenRequest) error
}
