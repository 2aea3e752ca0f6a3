package models

import "time"

// EmergencyContact is a third party the user designates to be notified
// on a panic event. Contacts are embedded in the user document.
//
// Invariants maintained by the contact directory:
//   - phone and email are unique within a user
//   - priorities form a contiguous 1..N sequence in list order
type EmergencyContact struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Phone        string    `json:"phone" bson:"phone"`
	Email        string    `json:"email" bson:"email"`
	Relationship string    `json:"relationship" bson:"relationship"`
	Priority     int       `json:"priority" bson:"priority"`
	AddedAt      time.Time `json:"addedAt" bson:"addedAt"`
}

// DefaultRelationship is assigned when a contact is added without one.
const DefaultRelationship = "Emergency Contact"

// AddContactRequest is the payload for adding an emergency contact
type AddContactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Relationship string `json:"relationship"`
}

// UpdateContactRequest patches the provided fields of an existing contact.
// Nil pointers mean "leave unchanged".
type UpdateContactRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Relationship *string `json:"relationship"`
}
