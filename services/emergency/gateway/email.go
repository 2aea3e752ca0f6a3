package gateway

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"golang.org/x/time/rate"
	"gopkg.in/gomail.v2"
)

// EmailChannel delivers emergency alerts over pooled SMTP. When credentials
// are absent it short-circuits with zero sent and the full contact count as
// total, so the report still shows how many recipients were skipped.
type EmailChannel struct {
	cfg         models.EmailConfig
	limiter     *rate.Limiter
	sendTimeout time.Duration
	dial        func() (gomail.SendCloser, error)
}

// NewEmailChannel creates the email channel from SMTP configuration.
func NewEmailChannel(cfg models.EmailConfig) *EmailChannel {
	ratePerSec := cfg.RatePerSec
	if ratePerSec <= 0 {
		ratePerSec = 5
	}
	sendTimeout := time.Duration(cfg.SendTimeout) * time.Second
	if sendTimeout <= 0 {
		sendTimeout = 5 * time.Second
	}
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	return &EmailChannel{
		cfg:         cfg,
		limiter:     rate.NewLimiter(rate.Limit(ratePerSec), 1),
		sendTimeout: sendTimeout,
		dial:        func() (gomail.SendCloser, error) { return dialer.Dial() },
	}
}

// Name identifies the channel in dispatch reports.
func (e *EmailChannel) Name() string { return ChannelEmail }

func (e *EmailChannel) configured() bool {
	return e.cfg.User != "" && e.cfg.Pass != ""
}

// Send mails every contact with a deliverable address. One recipient
// failing never blocks the others, and each recipient gets a bounded send
// budget so a rate-limited or stuck send cannot starve the rest of the
// list inside the dispatch window.
func (e *EmailChannel) Send(ctx context.Context, user *models.User, alert *models.EmergencyAlert, contacts []models.EmergencyContact) models.ChannelReport {
	report := models.ChannelReport{Total: len(contacts)}
	if len(contacts) == 0 {
		return report
	}

	if !e.configured() {
		logger.Warn("Email channel not configured, skipping notifications",
			logger.String("alert_id", alert.ID.Hex()),
			logger.Int("contacts", len(contacts)))
		return report
	}

	sender, err := e.dial()
	if err != nil {
		logger.Error("Failed to connect to SMTP server",
			logger.String("alert_id", alert.ID.Hex()),
			logger.Err(err))
		report.Failed = len(contacts)
		return report
	}
	defer sender.Close()

	body, err := renderAlertEmail(user, alert)
	if err != nil {
		logger.Error("Failed to render alert email", logger.Err(err))
		report.Failed = len(contacts)
		return report
	}

	from := e.cfg.From
	if from == "" {
		from = e.cfg.User
	}
	subject := fmt.Sprintf("🚨 EMERGENCY: %s Needs Immediate Help!", displayName(user))

	for _, contact := range contacts {
		if contact.Email == "" {
			report.Failed++
			continue
		}
		sendCtx, cancel := context.WithTimeout(ctx, e.sendTimeout)
		err := e.limiter.Wait(sendCtx)
		cancel()
		if err != nil {
			logger.Warn("Email send budget exhausted",
				logger.String("alert_id", alert.ID.Hex()),
				logger.String("contact_id", contact.ID),
				logger.Err(err))
			report.Failed++
			continue
		}

		msg := gomail.NewMessage()
		msg.SetHeader("From", from)
		msg.SetHeader("To", contact.Email)
		msg.SetHeader("Subject", subject)
		msg.SetBody("text/html", body)

		if err := gomail.Send(sender, msg); err != nil {
			logger.Error("Failed to send emergency email",
				logger.String("alert_id", alert.ID.Hex()),
				logger.String("contact_email", contact.Email),
				logger.Err(err))
			report.Failed++
			continue
		}

		logger.Info("Emergency email sent",
			logger.String("alert_id", alert.ID.Hex()),
			logger.String("contact_id", contact.ID))
		report.Sent++
		report.Notified = append(report.Notified, contact.ID)
	}

	return report
}

type alertEmailData struct {
	Name        string
	Phone       string
	Email       string
	TriggerDesc string
	Timestamp   string
	MapsLink    string
	HasCoords   bool
	Coordinates string
	Address     string
	HasScore    bool
	SafetyScore string
	RiskLevel   string
}

func displayName(user *models.User) string {
	if user.Name != "" {
		return user.Name
	}
	return "User"
}

func renderAlertEmail(user *models.User, alert *models.EmergencyAlert) (string, error) {
	data := alertEmailData{
		Name:        displayName(user),
		Phone:       user.Phone,
		Email:       user.Email,
		TriggerDesc: alert.TriggerType.Pretty(),
		Timestamp:   alert.Timestamp.Local().Format("Jan 2, 2006 3:04:05 PM"),
		MapsLink:    "Location not available",
	}

	if alert.Location.HasCoordinates() {
		data.HasCoords = true
		data.MapsLink = fmt.Sprintf("https://maps.google.com/?q=%v,%v", alert.Location.Latitude, alert.Location.Longitude)
		data.Coordinates = fmt.Sprintf("%.6f, %.6f", alert.Location.Latitude, alert.Location.Longitude)
		data.Address = alert.Location.Address
	}

	if alert.SafetyAssessment != nil && alert.SafetyAssessment.SafetyScore != nil {
		data.HasScore = true
		data.SafetyScore = fmt.Sprintf("%g/100", *alert.SafetyAssessment.SafetyScore)
		data.RiskLevel = alert.SafetyAssessment.RiskLevel
	}

	var buf bytes.Buffer
	if err := alertEmailTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var alertEmailTemplate = template.Must(template.New("alertEmail").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; border: 2px solid #ff4444; border-radius: 10px;">
  <div style="background-color: #ff4444; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0; font-size: 24px;">🚨 EMERGENCY SOS ALERT</h1>
  </div>
  <div style="padding: 25px; background-color: #fff;">
    <h2 style="color: #333;">Urgent: {{.Name}} Needs Your Help!</h2>

    <div style="background-color: #fff3f5; padding: 20px; border-radius: 8px; border-left: 4px solid #ff4444; margin-bottom: 20px;">
      <p style="margin: 0; font-size: 16px; color: #d32f2f;"><strong>Hi, I'm {{.Name}}.</strong></p>
      <p style="margin: 10px 0 0 0; font-size: 16px; color: #d32f2f;">
        <strong>I need help immediately! Please check my current location and contact emergency services if you can't reach me.</strong>
      </p>
    </div>

    <div style="background-color: #f8f9fa; padding: 15px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="color: #333;">👤 My Information</h3>
      <p style="margin: 8px 0;"><strong>Name:</strong> {{.Name}}</p>
      <p style="margin: 8px 0;"><strong>Phone:</strong> {{.Phone}}</p>
      {{if .Email}}<p style="margin: 8px 0;"><strong>Email:</strong> {{.Email}}</p>{{end}}
      <p style="margin: 8px 0;"><strong>Emergency triggered:</strong> {{.TriggerDesc}}</p>
      <p style="margin: 8px 0;"><strong>Time:</strong> {{.Timestamp}}</p>
    </div>

    <div style="background-color: #e3f2fd; padding: 15px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="color: #1565c0;">📍 My Current Location</h3>
      {{if .HasCoords}}
      <p style="margin: 8px 0;"><strong>Map Link:</strong>
        <a href="{{.MapsLink}}" style="color: #1976d2; text-decoration: none;">📍 View My Location on Google Maps</a>
      </p>
      {{if .Address}}<p style="margin: 8px 0;"><strong>Approximate Address:</strong> {{.Address}}</p>{{end}}
      <p style="margin: 8px 0;"><strong>Coordinates:</strong> {{.Coordinates}}</p>
      {{else}}
      <p style="margin: 8px 0;">Location not available</p>
      {{end}}
      <p style="margin: 8px 0; font-size: 12px; color: #666;">📱 Location captured at time of emergency</p>
    </div>

    {{if .HasScore}}
    <div style="background-color: #fff3cd; padding: 15px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="color: #856404;">🛡️ Safety Assessment</h3>
      <p style="margin: 5px 0;">Safety Score: {{.SafetyScore}} ({{.RiskLevel}} risk)</p>
    </div>
    {{end}}

    <div style="background-color: #d4edda; padding: 20px; border-radius: 8px; border-left: 4px solid #28a745;">
      <h3 style="color: #155724;">🚨 Immediate Action Required</h3>
      <ol style="margin: 0; padding-left: 20px; color: #155724;">
        <li style="margin-bottom: 8px;"><strong>Call me first</strong> at {{.Phone}} to check if I'm safe</li>
        <li style="margin-bottom: 8px;"><strong>If I don't answer</strong>, call emergency services (112/911) immediately</li>
        <li style="margin-bottom: 8px;"><strong>Share this alert</strong> with other trusted contacts who can help</li>
        <li style="margin-bottom: 8px;"><strong>Use the map link</strong> above to see my exact location</li>
        <li><strong>Keep trying to reach me</strong> until you confirm I'm safe</li>
      </ol>
    </div>

    <div style="margin-top: 25px; padding-top: 15px; border-top: 1px solid #eee; text-align: center;">
      <p style="color: #666; font-size: 12px; margin: 5px 0;">This is an automated emergency alert from the RescueRush safety application.</p>
      <p style="color: #666; font-size: 12px; margin: 5px 0;">If you believe this was sent in error, please contact {{.Name}} immediately to confirm their safety.</p>
      <p style="color: #999; font-size: 11px; margin: 10px 0 0 0;">Sent via RescueRush • Emergency Response System</p>
    </div>
  </div>
</div>
`))
