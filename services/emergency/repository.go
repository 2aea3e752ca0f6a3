package emergency

import (
	"context"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rescuerush/rescuerush/services/emergency AlertRepo

// AlertRepo is the persistence surface for emergency alert documents.
type AlertRepo interface {
	CreateAlert(ctx context.Context, alert *models.EmergencyAlert) error
	GetAlertByID(ctx context.Context, id string) (*models.EmergencyAlert, error)
	ListAlertsByUser(ctx context.Context, userID string, limit int64) ([]models.EmergencyAlert, error)
	UpdateStatus(ctx context.Context, id string, status models.AlertStatus, cancelledAt *time.Time) error
	RecordResponders(ctx context.Context, id string, responders []models.Responder) error
	AppendEvidence(ctx context.Context, alertID string, evidence models.Evidence) error
	RemoveEvidence(ctx context.Context, alertID, evidenceID string) error
}
