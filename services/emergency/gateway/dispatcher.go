package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/services/emergency"
)

const dispatchTimeout = 10 * time.Second

// Channel names used in dispatch reports
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelPush  = "push"
)

// Dispatcher fans an alert out over every configured channel concurrently
// and aggregates the per-channel counters. Channel failures only move
// counters; the pipeline never fails because a channel did.
type Dispatcher struct {
	channels []emergency.NotificationChannel
}

// NewDispatcher creates a dispatcher over the configured channels.
func NewDispatcher(channels []emergency.NotificationChannel) *Dispatcher {
	return &Dispatcher{channels: channels}
}

// Dispatch runs all channels in parallel, each under a bounded timeout.
// An empty contact list yields zero counts without touching any channel.
// The aggregate report carries the deduplicated union of contact IDs the
// channels reached, for responder bookkeeping.
func (d *Dispatcher) Dispatch(ctx context.Context, user *models.User, alert *models.EmergencyAlert, contacts []models.EmergencyContact) *models.NotificationReport {
	report := &models.NotificationReport{}
	if len(contacts) == 0 {
		logger.Info("No emergency contacts to notify",
			logger.String("alert_id", alert.ID.Hex()),
			logger.String("user_id", user.ID.Hex()))
		return report
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		notified = make(map[string]struct{})
	)

	for _, ch := range d.channels {
		wg.Add(1)
		go func(ch emergency.NotificationChannel) {
			defer wg.Done()

			sendCtx, cancel := context.WithTimeout(ctx, dispatchTimeout)
			defer cancel()

			result := ch.Send(sendCtx, user, alert, contacts)

			mu.Lock()
			defer mu.Unlock()
			switch ch.Name() {
			case ChannelEmail:
				report.EmailSent = result.Sent
				report.EmailFailed = result.Failed
				report.EmailTotal = result.Total
			case ChannelSMS:
				report.SMSSent = result.Sent
				report.SMSFailed = result.Failed
				report.SMSTotal = result.Total
			case ChannelPush:
				report.PushSent = result.Sent
				report.PushFailed = result.Failed
				report.PushTotal = result.Total
			default:
				logger.Warn("Unknown notification channel", logger.String("channel", ch.Name()))
			}
			for _, contactID := range result.Notified {
				if _, seen := notified[contactID]; seen {
					continue
				}
				notified[contactID] = struct{}{}
				report.Notified = append(report.Notified, contactID)
			}
		}(ch)
	}

	wg.Wait()

	logger.Info("Notification dispatch complete",
		logger.String("alert_id", alert.ID.Hex()),
		logger.Int("email_sent", report.EmailSent),
		logger.Int("email_failed", report.EmailFailed),
		logger.Int("sms_sent", report.SMSSent),
		logger.Int("sms_failed", report.SMSFailed),
		logger.Int("push_sent", report.PushSent),
		logger.Int("push_failed", report.PushFailed),
		logger.Int("contacts_reached", len(report.Notified)))

	return report
}
