package usecase

import (
	"context"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/apperrors"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/internal/pkg/websocket"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const historyLimit = 50

// TriggerAlert runs the full alert pipeline: validate, derive threat level,
// persist, load the owner, dispatch notifications, record the contacts
// that were reached, broadcast. The persisted
// record always precedes any external side effect; once the alert is stored,
// notification and broadcast failures only move counters and logs.
func (u *EmergencyUC) TriggerAlert(ctx context.Context, req *models.TriggerRequest) (*models.TriggerResult, error) {
	if req.UserID == "" {
		return nil, apperrors.BadRequest("User ID is required")
	}
	ownerID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid user ID")
	}

	triggerType := req.TriggerType
	if triggerType == "" {
		triggerType = models.TriggerManual
	}
	if !triggerType.Valid() {
		return nil, apperrors.BadRequestf("Unknown trigger type: %s", triggerType)
	}

	now := u.now()
	timestamp := now
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return nil, apperrors.BadRequest("Invalid timestamp format")
		}
		timestamp = parsed
	}

	threatLevel := estimateThreatLevel(req.SafetyAssessment, now)

	alert := &models.EmergencyAlert{
		UserID:           ownerID,
		TriggerType:      triggerType,
		Location:         req.Location,
		SafetyAssessment: req.SafetyAssessment,
		DeviceInfo:       req.DeviceInfo,
		Evidence:         []models.Evidence{},
		ThreatLevel:      threatLevel,
		Status:           models.AlertActive,
		Responders:       []models.Responder{},
		Immediate:        req.Immediate,
		Timestamp:        timestamp,
	}
	if len(req.Extra) > 0 {
		alert.Extra = bson.M(req.Extra)
	}

	if err := u.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, apperrors.Internal("Failed to save emergency alert", err)
	}

	logger.Info("Emergency alert persisted",
		logger.String("alert_id", alert.ID.Hex()),
		logger.String("user_id", req.UserID),
		logger.String("trigger_type", string(triggerType)),
		logger.Int("threat_level", threatLevel),
		logger.Bool("immediate", req.Immediate))

	user, err := u.users.GetUserByID(ctx, req.UserID)
	if err != nil || user == nil {
		// The alert stays persisted as an orphan for audit.
		logger.Warn("Alert owner not found after persist",
			logger.String("alert_id", alert.ID.Hex()),
			logger.String("user_id", req.UserID))
		return nil, apperrors.NotFound("User not found")
	}

	report := u.dispatcher.Dispatch(ctx, user, alert, user.EmergencyContacts)

	if len(report.Notified) > 0 {
		notifiedAt := u.now()
		responders := make([]models.Responder, 0, len(report.Notified))
		for _, contactID := range report.Notified {
			responders = append(responders, models.Responder{
				ContactID:  contactID,
				NotifiedAt: notifiedAt,
			})
		}
		alert.Responders = responders
		if err := u.alertRepo.RecordResponders(ctx, alert.ID.Hex(), responders); err != nil {
			// The alert and its report survive; only the bookkeeping is lost.
			logger.Warn("Failed to record alert responders",
				logger.String("alert_id", alert.ID.Hex()),
				logger.Err(err))
		}
	}

	u.bus.Broadcast(req.UserID, websocket.EventNewEmergency, alert.Summarize())

	return &models.TriggerResult{
		Alert:         alert.Summarize(),
		Notifications: report,
	}, nil
}

// GetAlert fetches a single alert by id.
func (u *EmergencyUC) GetAlert(ctx context.Context, alertID string) (*models.EmergencyAlert, error) {
	return u.loadAlert(ctx, alertID)
}

// AlertHistory returns up to the 50 newest alerts for a user, newest
// first, joined with minimal user identity. Cancelled alerts are included
// and distinguishable by status.
func (u *EmergencyUC) AlertHistory(ctx context.Context, userID string) ([]models.AlertHistoryEntry, error) {
	if userID == "" {
		return nil, apperrors.BadRequest("User ID is required")
	}

	alerts, err := u.alertRepo.ListAlertsByUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, apperrors.Internal("Failed to load alert history", err)
	}

	var userName, userPhone string
	if user, err := u.users.GetUserByID(ctx, userID); err == nil && user != nil {
		userName = user.Name
		userPhone = user.Phone
	}

	entries := make([]models.AlertHistoryEntry, 0, len(alerts))
	for _, a := range alerts {
		entries = append(entries, models.AlertHistoryEntry{
			EmergencyAlert: a,
			UserName:       userName,
			UserPhone:      userPhone,
		})
	}
	return entries, nil
}

// CancelAlert flips an active alert to cancelled. Cancelling an already
// cancelled alert returns the current state unchanged.
func (u *EmergencyUC) CancelAlert(ctx context.Context, alertID string) (*models.EmergencyAlert, error) {
	alert, err := u.loadAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if alert.Status == models.AlertCancelled {
		return alert, nil
	}
	if alert.Status == models.AlertResolved {
		return nil, apperrors.Conflict("Alert is already resolved")
	}

	cancelledAt := u.now()
	if err := u.alertRepo.UpdateStatus(ctx, alertID, models.AlertCancelled, &cancelledAt); err != nil {
		return nil, apperrors.Internal("Failed to cancel alert", err)
	}

	alert.Status = models.AlertCancelled
	alert.CancelledAt = &cancelledAt

	logger.Info("Emergency alert cancelled",
		logger.String("alert_id", alertID),
		logger.String("user_id", alert.UserID.Hex()))

	return alert, nil
}

// ResolveAlert marks an active alert as resolved. Reserved for operator
// tooling; idempotent on already-resolved alerts.
func (u *EmergencyUC) ResolveAlert(ctx context.Context, alertID string) (*models.EmergencyAlert, error) {
	alert, err := u.loadAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if alert.Status == models.AlertResolved {
		return alert, nil
	}
	if alert.Status == models.AlertCancelled {
		return nil, apperrors.Conflict("Alert is already cancelled")
	}

	if err := u.alertRepo.UpdateStatus(ctx, alertID, models.AlertResolved, nil); err != nil {
		return nil, apperrors.Internal("Failed to resolve alert", err)
	}

	alert.Status = models.AlertResolved
	return alert, nil
}

func (u *EmergencyUC) loadAlert(ctx context.Context, alertID string) (*models.EmergencyAlert, error) {
	if alertID == "" {
		return nil, apperrors.BadRequest("Alert ID is required")
	}
	alert, err := u.alertRepo.GetAlertByID(ctx, alertID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.NotFound("Alert not found")
		}
		return nil, apperrors.Internal("Failed to load alert", err)
	}
	if alert == nil {
		return nil, apperrors.NotFound("Alert not found")
	}
	return alert, nil
}
