package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user of the safety application
type User struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Phone             string             `json:"phone" bson:"phone"`
	Name              string             `json:"name" bson:"name"`
	Email             string             `json:"email,omitempty" bson:"email"`
	Password          string             `json:"-" bson:"password"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts" bson:"emergencyContacts"`
	LocationHistory   []LocationPoint    `json:"locationHistory,omitempty" bson:"locationHistory"`
	FCMToken          string             `json:"fcmToken,omitempty" bson:"fcmToken,omitempty"`
	LastLogin         time.Time          `json:"lastLogin" bson:"lastLogin"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}

// MaxLocationHistory bounds the per-user location history; older entries
// are truncated from the head.
const MaxLocationHistory = 100

// UserSummary is the user shape returned to clients. The password hash
// never leaves the repository layer.
type UserSummary struct {
	ID                string             `json:"id"`
	Phone             string             `json:"phone"`
	Name              string             `json:"name"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
}

// Summary converts a full user document into its client-facing shape.
func (u *User) Summary() *UserSummary {
	contacts := u.EmergencyContacts
	if contacts == nil {
		contacts = []EmergencyContact{}
	}
	return &UserSummary{
		ID:                u.ID.Hex(),
		Phone:             u.Phone,
		Name:              u.Name,
		EmergencyContacts: contacts,
	}
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the payload for phone+password login
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthResponse contains the authentication result returned to clients
type AuthResponse struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}

// PushTokenRequest registers a device push token for a user
type PushTokenRequest struct {
	UserID    string `json:"userId"`
	PushToken string `json:"pushToken"`
}
