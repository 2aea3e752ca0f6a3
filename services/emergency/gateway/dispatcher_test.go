package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/services/emergency"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubChannel struct {
	name   string
	report models.ChannelReport
	delay  time.Duration
	calls  int
}

func (s *stubChannel) Name() string { return s.name }

func (s *stubChannel) Send(ctx context.Context, user *models.User, alert *models.EmergencyAlert, contacts []models.EmergencyContact) models.ChannelReport {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
		}
	}
	return s.report
}

func dispatchFixtures() (*models.User, *models.EmergencyAlert, []models.EmergencyContact) {
	user := &models.User{ID: primitive.NewObjectID(), Name: "Jane", Phone: "+15551234567"}
	alert := &models.EmergencyAlert{ID: primitive.NewObjectID(), UserID: user.ID, Status: models.AlertActive}
	contacts := []models.EmergencyContact{
		{ID: "c1", Name: "Mom", Phone: "+15550001111", Email: "mom@example.com"},
		{ID: "c2", Name: "Dad", Phone: "+15550002222", Email: "dad@example.com"},
	}
	return user, alert, contacts
}

func TestDispatch_AggregatesChannelReports(t *testing.T) {
	user, alert, contacts := dispatchFixtures()
	email := &stubChannel{name: ChannelEmail, report: models.ChannelReport{Sent: 2, Total: 2}}
	sms := &stubChannel{name: ChannelSMS, report: models.ChannelReport{Sent: 1, Failed: 1, Total: 2}}

	d := NewDispatcher([]emergency.NotificationChannel{email, sms})
	report := d.Dispatch(context.Background(), user, alert, contacts)

	assert.Equal(t, 2, report.EmailSent)
	assert.Equal(t, 0, report.EmailFailed)
	assert.Equal(t, 2, report.EmailTotal)
	assert.Equal(t, 1, report.SMSSent)
	assert.Equal(t, 1, report.SMSFailed)
	assert.Equal(t, 2, report.SMSTotal)
	assert.Equal(t, 1, email.calls)
	assert.Equal(t, 1, sms.calls)
}

func TestDispatch_MergesNotifiedContactsAcrossChannels(t *testing.T) {
	user, alert, contacts := dispatchFixtures()
	email := &stubChannel{name: ChannelEmail, report: models.ChannelReport{Sent: 2, Total: 2, Notified: []string{"c1", "c2"}}}
	sms := &stubChannel{name: ChannelSMS, report: models.ChannelReport{Sent: 1, Failed: 1, Total: 2, Notified: []string{"c1"}}}

	d := NewDispatcher([]emergency.NotificationChannel{email, sms})
	report := d.Dispatch(context.Background(), user, alert, contacts)

	// A contact reached over both channels appears once.
	assert.ElementsMatch(t, []string{"c1", "c2"}, report.Notified)
}

func TestDispatch_PushChannelCounters(t *testing.T) {
	user, alert, contacts := dispatchFixtures()
	push := &stubChannel{name: ChannelPush, report: models.ChannelReport{Sent: 1, Failed: 1, Total: 2, Notified: []string{"c2"}}}

	d := NewDispatcher([]emergency.NotificationChannel{push})
	report := d.Dispatch(context.Background(), user, alert, contacts)

	assert.Equal(t, 1, report.PushSent)
	assert.Equal(t, 1, report.PushFailed)
	assert.Equal(t, 2, report.PushTotal)
	assert.Equal(t, []string{"c2"}, report.Notified)
}

func TestDispatch_ChannelFailureIsIsolated(t *testing.T) {
	user, alert, contacts := dispatchFixtures()
	email := &stubChannel{name: ChannelEmail, report: models.ChannelReport{Failed: 2, Total: 2}}
	sms := &stubChannel{name: ChannelSMS, report: models.ChannelReport{Sent: 2, Total: 2}}

	d := NewDispatcher([]emergency.NotificationChannel{email, sms})
	report := d.Dispatch(context.Background(), user, alert, contacts)

	// One channel failing completely does not disturb the other's counters.
	assert.Equal(t, 2, report.EmailFailed)
	assert.Equal(t, 2, report.SMSSent)
}

func TestDispatch_EmptyContacts(t *testing.T) {
	user, alert, _ := dispatchFixtures()
	email := &stubChannel{name: ChannelEmail, report: models.ChannelReport{Sent: 99}}

	d := NewDispatcher([]emergency.NotificationChannel{email})
	report := d.Dispatch(context.Background(), user, alert, nil)

	assert.Equal(t, &models.NotificationReport{}, report)
	assert.Equal(t, 0, email.calls, "channels must not run without contacts")
}

func TestDispatch_ChannelsRunConcurrently(t *testing.T) {
	user, alert, contacts := dispatchFixtures()
	email := &stubChannel{name: ChannelEmail, delay: 50 * time.Millisecond, report: models.ChannelReport{Total: 2}}
	sms := &stubChannel{name: ChannelSMS, delay: 50 * time.Millisecond, report: models.ChannelReport{Total: 2}}

	d := NewDispatcher([]emergency.NotificationChannel{email, sms})
	start := time.Now()
	d.Dispatch(context.Background(), user, alert, contacts)

	assert.Less(t, time.Since(start), 90*time.Millisecond, "channels should not run sequentially")
}
