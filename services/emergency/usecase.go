package emergency

import (
	"context"

	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rescuerush/rescuerush/services/emergency/EmergencyUC

// EmergencyUC is the alert pipeline surface: trigger, lifecycle
// transitions, history, and evidence intake.
type EmergencyUC interface {
	// pipeline
	TriggerAlert(ctx context.Context, req *models.TriggerRequest) (*models.TriggerResult, error)

	// lifecycle and retrieval
	GetAlert(ctx context.Context, alertID string) (*models.EmergencyAlert, error)
	AlertHistory(ctx context.Context, userID string) ([]models.AlertHistoryEntry, error)
	CancelAlert(ctx context.Context, alertID string) (*models.EmergencyAlert, error)
	ResolveAlert(ctx context.Context, alertID string) (*models.EmergencyAlert, error)

	// evidence
	UploadEvidence(ctx context.Context, req *models.EvidenceUploadRequest) (*models.Evidence, error)
	ListEvidence(ctx context.Context, emergencyID string) (*models.EvidenceListResult, error)
	DeleteEvidence(ctx context.Context, emergencyID, evidenceID string) error
}
