package emergency

import (
	"context"

	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/rescuerush/rescuerush/services/emergency UserDirectory,NotificationChannel,NotificationDispatcher,RealtimeBus

// UserDirectory resolves alert owners and their emergency contacts.
// Backed by the users service repository. Phone lookup lets the push
// channel map a contact onto a registered user's device token.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
}

// NotificationChannel fans one alert out to a contact list and reports
// per-recipient counters. Implementations never return an error; failures
// are absorbed into the report.
type NotificationChannel interface {
	Name() string
	Send(ctx context.Context, user *models.User, alert *models.EmergencyAlert, contacts []models.EmergencyContact) models.ChannelReport
}

// NotificationDispatcher fans an alert out over every configured channel
// and aggregates the per-channel counters.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, user *models.User, alert *models.EmergencyAlert, contacts []models.EmergencyContact) *models.NotificationReport
}

// RealtimeBus pushes pipeline events to connected websocket clients.
// Fire-and-forget; delivery failures are logged inside the bus.
type RealtimeBus interface {
	Broadcast(senderID string, event string, data interface{})
}
