package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TriggerType identifies the user gesture that produced an alert
type TriggerType string

const (
	TriggerSOS    TriggerType = "sos"
	TriggerShake  TriggerType = "shake"
	TriggerVoice  TriggerType = "voice"
	TriggerManual TriggerType = "manual"
	TriggerAuto   TriggerType = "auto"
)

// Valid reports whether the trigger type is one of the known gestures.
func (t TriggerType) Valid() bool {
	switch t {
	case TriggerSOS, TriggerShake, TriggerVoice, TriggerManual, TriggerAuto:
		return true
	}
	return false
}

// Pretty returns a human-readable description for notification messages.
func (t TriggerType) Pretty() string {
	switch t {
	case TriggerShake:
		return "Phone Shake Detection"
	case TriggerVoice:
		return "Voice Activation"
	case TriggerAuto:
		return "Automatic Detection"
	default:
		return "SOS Button"
	}
}

// AlertStatus is the lifecycle state of an emergency alert
type AlertStatus string

const (
	AlertActive    AlertStatus = "active"
	AlertResolved  AlertStatus = "resolved"
	AlertCancelled AlertStatus = "cancelled"
)

// Terminal reports whether the status rejects further transitions.
func (s AlertStatus) Terminal() bool {
	return s == AlertResolved || s == AlertCancelled
}

// SafetyAssessment is a scored risk summary supplied by the client or an
// upstream analyzer. SafetyScore uses a pointer so "absent" is distinguishable
// from zero.
type SafetyAssessment struct {
	SafetyScore     *float64          `json:"safety_score,omitempty" bson:"safety_score,omitempty"`
	RiskLevel       string            `json:"risk_level,omitempty" bson:"risk_level,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
	Factors         AssessmentFactors `json:"factors,omitempty" bson:"factors,omitempty"`
}

// AssessmentFactors are the inputs the analyzer based its score on
type AssessmentFactors struct {
	TimeOfDay      float64 `json:"timeOfDay,omitempty" bson:"timeOfDay,omitempty"`
	DayOfWeek      float64 `json:"dayOfWeek,omitempty" bson:"dayOfWeek,omitempty"`
	HistoricalRisk float64 `json:"historicalRisk,omitempty" bson:"historicalRisk,omitempty"`
}

// DeviceInfo captures the client device state at trigger time
type DeviceInfo struct {
	BatteryLevel        float64 `json:"batteryLevel,omitempty" bson:"batteryLevel,omitempty"`
	NetworkType         string  `json:"networkType,omitempty" bson:"networkType,omitempty"`
	IsConnected         bool    `json:"isConnected" bson:"isConnected"`
	IsInternetReachable bool    `json:"isInternetReachable" bson:"isInternetReachable"`
}

// EvidenceType categorizes an evidence attachment
type EvidenceType string

const (
	EvidencePhoto EvidenceType = "photo"
	EvidenceAudio EvidenceType = "audio"
	EvidenceVideo EvidenceType = "video"
	EvidenceFile  EvidenceType = "file"
)

// Evidence is a media attachment on an emergency alert. URL is either an
// external object-store reference or a data URI in development.
type Evidence struct {
	ID           string       `json:"id" bson:"id"`
	Type         EvidenceType `json:"type" bson:"type"`
	Filename     string       `json:"filename" bson:"filename"`
	URL          string       `json:"url" bson:"url"`
	ThumbnailURL string       `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	Duration     float64      `json:"duration,omitempty" bson:"duration,omitempty"`
	Size         int64        `json:"size" bson:"size"`
	Mimetype     string       `json:"mimetype" bson:"mimetype"`
	UploadedAt   time.Time    `json:"uploadedAt" bson:"uploadedAt"`
	Description  string       `json:"description,omitempty" bson:"description,omitempty"`
}

// Responder records the notification bookkeeping for one contact
type Responder struct {
	ContactID    string     `json:"contactId" bson:"contactId"`
	NotifiedAt   time.Time  `json:"notifiedAt" bson:"notifiedAt"`
	Responded    bool       `json:"responded" bson:"responded"`
	ResponseTime *int64     `json:"responseTime,omitempty" bson:"responseTime,omitempty"`
	RespondedAt  *time.Time `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
}

// EmergencyAlert is a single panic event with its context and delivery
// bookkeeping. Extra carries unknown client fields so newer mobile builds
// can attach data the backend does not model yet.
type EmergencyAlert struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID           primitive.ObjectID `json:"userId" bson:"userId"`
	TriggerType      TriggerType        `json:"triggerType" bson:"triggerType"`
	Location         *Location          `json:"location,omitempty" bson:"location,omitempty"`
	SafetyAssessment *SafetyAssessment  `json:"safetyAssessment,omitempty" bson:"safetyAssessment,omitempty"`
	DeviceInfo       *DeviceInfo        `json:"deviceInfo,omitempty" bson:"deviceInfo,omitempty"`
	Evidence         []Evidence         `json:"evidence" bson:"evidence"`
	ThreatLevel      int                `json:"threatLevel" bson:"threatLevel"`
	Status           AlertStatus        `json:"status" bson:"status"`
	Responders       []Responder        `json:"responders" bson:"responders"`
	PoliceNotified   bool               `json:"policeNotified" bson:"policeNotified"`
	Immediate        bool               `json:"immediate" bson:"immediate"`
	Timestamp        time.Time          `json:"timestamp" bson:"timestamp"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
	CancelledAt      *time.Time         `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
	Extra            bson.M             `json:"extra,omitempty" bson:"extra,omitempty"`
}

// TriggerRequest is the client payload for POST /api/emergency/trigger.
// Additional unknown fields are collected by the handler into Extra.
type TriggerRequest struct {
	UserID           string            `json:"userId"`
	TriggerType      TriggerType       `json:"triggerType"`
	Location         *Location         `json:"location"`
	SafetyAssessment *SafetyAssessment `json:"safetyAssessment"`
	DeviceInfo       *DeviceInfo       `json:"deviceInfo"`
	Immediate        bool              `json:"immediate"`
	Timestamp        string            `json:"timestamp"`
	Extra            map[string]any    `json:"-"`
}

// AlertSummary is the condensed alert shape returned from the trigger
// endpoint and broadcast on the realtime bus
type AlertSummary struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId,omitempty"`
	TriggerType TriggerType `json:"triggerType"`
	Timestamp   time.Time   `json:"timestamp"`
	Location    *Location   `json:"location,omitempty"`
	ThreatLevel int         `json:"threatLevel,omitempty"`
	Status      AlertStatus `json:"status"`
}

// Summarize produces the client-facing summary of an alert.
func (a *EmergencyAlert) Summarize() *AlertSummary {
	return &AlertSummary{
		ID:          a.ID.Hex(),
		UserID:      a.UserID.Hex(),
		TriggerType: a.TriggerType,
		Timestamp:   a.Timestamp,
		Location:    a.Location,
		ThreatLevel: a.ThreatLevel,
		Status:      a.Status,
	}
}

// EvidenceUploadRequest carries one decoded multipart upload into the
// evidence intake. Data is the full file body, already bounded by the
// handler's size limit.
type EvidenceUploadRequest struct {
	EmergencyID string
	Filename    string
	Mimetype    string
	Size        int64
	Data        []byte
	Description string
}

// EvidenceListResult returns an alert's evidence with minimal context
type EvidenceListResult struct {
	EmergencyID string      `json:"emergencyId"`
	Status      AlertStatus `json:"status"`
	Evidence    []Evidence  `json:"evidence"`
}

// AlertHistoryEntry joins an alert with minimal user identity
type AlertHistoryEntry struct {
	EmergencyAlert `bson:",inline"`
	UserName       string `json:"userName,omitempty" bson:"userName,omitempty"`
	UserPhone      string `json:"userPhone,omitempty" bson:"userPhone,omitempty"`
}
