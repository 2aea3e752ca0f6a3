package usecase

import (
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/internal/pkg/storage"
	"github.com/rescuerush/rescuerush/services/emergency"
)

// EmergencyUC implements the emergency.EmergencyUC interface. The clock is
// injected so the threat estimator's time-of-day branch is testable.
type EmergencyUC struct {
	alertRepo  emergency.AlertRepo
	users      emergency.UserDirectory
	dispatcher emergency.NotificationDispatcher
	bus        emergency.RealtimeBus
	evidence   storage.EvidenceStore
	cfg        *models.Config
	now        func() time.Time
}

// NewEmergencyUC creates a new emergency usecase instance
func NewEmergencyUC(
	alertRepo emergency.AlertRepo,
	users emergency.UserDirectory,
	dispatcher emergency.NotificationDispatcher,
	bus emergency.RealtimeBus,
	evidenceStore storage.EvidenceStore,
	cfg *models.Config,
) *EmergencyUC {
	return &EmergencyUC{
		alertRepo:  alertRepo,
		users:      users,
		dispatcher: dispatcher,
		bus:        bus,
		evidence:   evidenceStore,
		cfg:        cfg,
		now:        time.Now,
	}
}
