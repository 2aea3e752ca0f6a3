package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

type stubSMSSender struct {
	sent    []string
	failFor map[string]error
}

func (s *stubSMSSender) SendSMS(ctx context.Context, to, message string) error {
	if err, ok := s.failFor[to]; ok {
		return err
	}
	s.sent = append(s.sent, to)
	return nil
}

func smsConfig() models.SMSConfig {
	return models.SMSConfig{Enabled: true, Endpoint: "https://sms.example.com", APIKey: "key", Sender: "RescueRush"}
}

func TestSMSChannel_SendsToEveryContact(t *testing.T) {
	sender := &stubSMSSender{}
	ch := NewSMSChannel(smsConfig(), sender, nil)
	user, alert := emailFixtures()
	contacts := []models.EmergencyContact{
		{ID: "c1", Phone: "+15550001111"},
		{ID: "c2", Phone: "+15550002222"},
	}

	report := ch.Send(context.Background(), user, alert, contacts)

	assert.Equal(t, models.ChannelReport{Sent: 2, Failed: 0, Total: 2, Notified: []string{"c1", "c2"}}, report)
	assert.Equal(t, []string{"+15550001111", "+15550002222"}, sender.sent)
}

func TestSMSChannel_NilSenderShortCircuits(t *testing.T) {
	ch := NewSMSChannel(models.SMSConfig{Enabled: true}, nil, nil)
	user, alert := emailFixtures()
	contacts := []models.EmergencyContact{{ID: "c1", Phone: "+15550001111"}}

	report := ch.Send(context.Background(), user, alert, contacts)

	assert.Equal(t, models.ChannelReport{Sent: 0, Failed: 0, Total: 1}, report)
}

func TestSMSChannel_DisabledShortCircuits(t *testing.T) {
	sender := &stubSMSSender{}
	cfg := smsConfig()
	cfg.Enabled = false
	ch := NewSMSChannel(cfg, sender, nil)
	user, alert := emailFixtures()

	report := ch.Send(context.Background(), user, alert, []models.EmergencyContact{{ID: "c1", Phone: "+15550001111"}})

	assert.Equal(t, models.ChannelReport{Sent: 0, Failed: 0, Total: 1}, report)
	assert.Empty(t, sender.sent)
}

func TestSMSChannel_FallbackRecoversFailure(t *testing.T) {
	sender := &stubSMSSender{failFor: map[string]error{"+15550001111": errors.New("provider error")}}
	fallbackCalls := 0
	fallback := func(ctx context.Context, to, message string) error {
		fallbackCalls++
		return nil
	}
	ch := NewSMSChannel(smsConfig(), sender, fallback)
	user, alert := emailFixtures()
	contacts := []models.EmergencyContact{
		{ID: "c1", Phone: "+15550001111"},
		{ID: "c2", Phone: "+15550002222"},
	}

	report := ch.Send(context.Background(), user, alert, contacts)

	// The recovered recipient leaves the failed count but is not counted
	// as a primary send.
	assert.Equal(t, models.ChannelReport{Sent: 1, Failed: 0, Total: 2, Notified: []string{"c1", "c2"}}, report)
	assert.Equal(t, 1, fallbackCalls)
}

func TestSMSChannel_FallbackFailureKeepsFailedCount(t *testing.T) {
	sender := &stubSMSSender{failFor: map[string]error{"+15550001111": errors.New("provider error")}}
	fallback := func(ctx context.Context, to, message string) error {
		return errors.New("fallback down")
	}
	ch := NewSMSChannel(smsConfig(), sender, fallback)
	user, alert := emailFixtures()

	report := ch.Send(context.Background(), user, alert, []models.EmergencyContact{{ID: "c1", Phone: "+15550001111"}})

	assert.Equal(t, models.ChannelReport{Sent: 0, Failed: 1, Total: 1}, report)
}

type deadlineSMSSender struct {
	deadlines int
}

func (s *deadlineSMSSender) SendSMS(ctx context.Context, to, message string) error {
	if _, ok := ctx.Deadline(); ok {
		s.deadlines++
	}
	return nil
}

func TestSMSChannel_BoundsEachProviderCall(t *testing.T) {
	sender := &deadlineSMSSender{}
	ch := NewSMSChannel(smsConfig(), sender, nil)
	user, alert := emailFixtures()
	contacts := []models.EmergencyContact{
		{ID: "c1", Phone: "+15550001111"},
		{ID: "c2", Phone: "+15550002222"},
	}

	ch.Send(context.Background(), user, alert, contacts)

	assert.Equal(t, 2, sender.deadlines, "every provider call must carry a deadline")
}

func TestRenderAlertSMS(t *testing.T) {
	user, alert := emailFixtures()

	msg := renderAlertSMS(user, alert)

	assert.Contains(t, msg, "EMERGENCY: Jane needs immediate help!")
	assert.Contains(t, msg, "SOS Button")
	assert.Contains(t, msg, "+15551234567")
	assert.Contains(t, msg, "https://maps.google.com/?q=-6.2,106.816666")
}

func TestRenderAlertSMS_NoLocation(t *testing.T) {
	user, alert := emailFixtures()
	alert.Location = nil

	msg := renderAlertSMS(user, alert)

	assert.Contains(t, msg, "Location not available")
}
