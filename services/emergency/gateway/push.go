package gateway

import (
	"context"

	httpclient "github.com/rescuerush/rescuerush/internal/pkg/http"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/services/emergency"
)

// pushMessage is one Expo-format push notification.
type pushMessage struct {
	To       string                 `json:"to"`
	Sound    string                 `json:"sound"`
	Title    string                 `json:"title"`
	Body     string                 `json:"body"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Priority string                 `json:"priority"`
}

// PushChannel delivers emergency alerts to contacts' mobile devices.
// A contact is reachable when their phone number resolves to a registered
// user with a stored device token; everyone else counts as failed for
// this channel and is left to email and SMS. Messages are posted to the
// push gateway in chunks, one failed chunk never blocks the others.
type PushChannel struct {
	cfg       models.PushConfig
	directory emergency.UserDirectory
	client    *httpclient.APIKeyClient
}

// NewPushChannel creates the push channel, or nil when no gateway
// endpoint is configured.
func NewPushChannel(cfg models.PushConfig, directory emergency.UserDirectory) *PushChannel {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 100
	}
	return &PushChannel{
		cfg:       cfg,
		directory: directory,
		client:    httpclient.NewAPIKeyClient("", cfg.Endpoint),
	}
}

// Name identifies the channel in dispatch reports.
func (p *PushChannel) Name() string { return ChannelPush }

// Send resolves each contact to a device token and posts the resulting
// messages in chunks.
func (p *PushChannel) Send(ctx context.Context, user *models.User, alert *models.EmergencyAlert, contacts []models.EmergencyContact) models.ChannelReport {
	report := models.ChannelReport{Total: len(contacts)}
	if len(contacts) == 0 {
		return report
	}

	messages, contactIDs := p.collectMessages(ctx, user, alert, contacts)
	report.Failed = len(contacts) - len(messages)
	if len(messages) == 0 {
		logger.Debug("No contacts with device tokens for push",
			logger.String("alert_id", alert.ID.Hex()))
		return report
	}

	for start := 0; start < len(messages); start += p.cfg.ChunkSize {
		end := start + p.cfg.ChunkSize
		if end > len(messages) {
			end = len(messages)
		}
		chunk := messages[start:end]

		if err := p.client.PostJSON(ctx, "", chunk, nil); err != nil {
			logger.Error("Failed to send push chunk",
				logger.String("alert_id", alert.ID.Hex()),
				logger.Int("chunk_size", len(chunk)),
				logger.Err(err))
			report.Failed += len(chunk)
			continue
		}
		report.Sent += len(chunk)
		report.Notified = append(report.Notified, contactIDs[start:end]...)
	}

	logger.Info("Push notifications dispatched",
		logger.String("alert_id", alert.ID.Hex()),
		logger.Int("sent", report.Sent),
		logger.Int("failed", report.Failed))

	return report
}

// collectMessages builds one push message per contact that resolves to a
// stored device token, with a parallel slice of contact IDs for responder
// bookkeeping.
func (p *PushChannel) collectMessages(ctx context.Context, user *models.User, alert *models.EmergencyAlert, contacts []models.EmergencyContact) ([]pushMessage, []string) {
	title := "🚨 EMERGENCY: " + displayName(user) + " Needs Immediate Help!"
	body := renderAlertSMS(user, alert)

	data := map[string]interface{}{
		"emergencyId": alert.ID.Hex(),
		"type":        "emergency_alert",
	}
	if alert.Location.HasCoordinates() {
		data["latitude"] = alert.Location.Latitude
		data["longitude"] = alert.Location.Longitude
	}

	var (
		messages   []pushMessage
		contactIDs []string
	)
	for _, contact := range contacts {
		token := p.resolveToken(ctx, contact)
		if token == "" {
			continue
		}
		messages = append(messages, pushMessage{
			To:       token,
			Sound:    "default",
			Title:    title,
			Body:     body,
			Data:     data,
			Priority: "high",
		})
		contactIDs = append(contactIDs, contact.ID)
	}
	return messages, contactIDs
}

func (p *PushChannel) resolveToken(ctx context.Context, contact models.EmergencyContact) string {
	if contact.Phone == "" {
		return ""
	}
	registered, err := p.directory.GetUserByPhone(ctx, contact.Phone)
	if err != nil || registered == nil {
		return ""
	}
	return registered.FCMToken
}
