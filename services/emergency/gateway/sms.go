package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

// smsSendTimeout bounds one provider call inside the dispatch window.
const smsSendTimeout = 5 * time.Second

// SMSSender delivers one text message to a phone number. Implementations
// wrap whatever provider API is configured at deploy time.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// FallbackFunc is invoked when the primary SMS send fails. A nil error
// from the fallback removes the recipient from the failed count.
type FallbackFunc func(ctx context.Context, to, message string) error

// SMSChannel delivers a plain-text variant of the alert to each contact's
// phone. A nil sender means no provider is configured; this is not an
// error, the channel reports zero counts with the full total.
type SMSChannel struct {
	cfg      models.SMSConfig
	sender   SMSSender
	fallback FallbackFunc
}

// NewSMSChannel creates the SMS channel. sender may be nil when no
// provider is configured.
func NewSMSChannel(cfg models.SMSConfig, sender SMSSender, fallback FallbackFunc) *SMSChannel {
	return &SMSChannel{cfg: cfg, sender: sender, fallback: fallback}
}

// Name identifies the channel in dispatch reports.
func (s *SMSChannel) Name() string { return ChannelSMS }

// Send texts every contact with a phone number.
func (s *SMSChannel) Send(ctx context.Context, user *models.User, alert *models.EmergencyAlert, contacts []models.EmergencyContact) models.ChannelReport {
	report := models.ChannelReport{Total: len(contacts)}
	if len(contacts) == 0 {
		return report
	}

	if !s.cfg.Enabled || s.sender == nil {
		logger.Debug("SMS channel not configured, skipping notifications",
			logger.String("alert_id", alert.ID.Hex()))
		return report
	}

	message := renderAlertSMS(user, alert)

	for _, contact := range contacts {
		if contact.Phone == "" {
			report.Failed++
			continue
		}

		// Each recipient gets a bounded slice of the dispatch window so
		// one stuck provider call cannot starve the rest of the list.
		sendCtx, cancel := context.WithTimeout(ctx, smsSendTimeout)
		err := s.sender.SendSMS(sendCtx, contact.Phone, message)
		cancel()
		if err != nil {
			logger.Error("Failed to send emergency SMS",
				logger.String("alert_id", alert.ID.Hex()),
				logger.String("contact_id", contact.ID),
				logger.Err(err))
			report.Failed++

			if s.fallback != nil {
				if fbErr := s.fallback(ctx, contact.Phone, message); fbErr == nil {
					report.Failed--
					report.Notified = append(report.Notified, contact.ID)
				}
			}
			continue
		}
		report.Sent++
		report.Notified = append(report.Notified, contact.ID)
	}

	return report
}

func renderAlertSMS(user *models.User, alert *models.EmergencyAlert) string {
	locationLine := "Location not available"
	if alert.Location.HasCoordinates() {
		locationLine = fmt.Sprintf("https://maps.google.com/?q=%v,%v", alert.Location.Latitude, alert.Location.Longitude)
	}
	return fmt.Sprintf(
		"EMERGENCY: %s needs immediate help! Trigger: %s. Call %s now. If no answer, call emergency services (112/911). Location: %s",
		displayName(user), alert.TriggerType.Pretty(), user.Phone, locationLine)
}

// LogFallback is the default fallback hook: it records the undelivered
// message so operators can retry manually.
func LogFallback(ctx context.Context, to, message string) error {
	logger.Warn("SMS fallback invoked",
		logger.String("to", to),
		logger.Int("message_len", len(message)))
	return nil
}
