package models

import "time"

// Location is the geographical context attached to an emergency alert
type Location struct {
	Latitude  float64    `json:"latitude" bson:"latitude"`
	Longitude float64    `json:"longitude" bson:"longitude"`
	Address   string     `json:"address,omitempty" bson:"address,omitempty"`
	Accuracy  float64    `json:"accuracy,omitempty" bson:"accuracy,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
}

// HasCoordinates reports whether the location carries a usable lat/lng pair.
func (l *Location) HasCoordinates() bool {
	return l != nil && (l.Latitude != 0 || l.Longitude != 0)
}

// LocationPoint is one entry of a user's bounded location history
type LocationPoint struct {
	Latitude  float64   `json:"latitude" bson:"latitude"`
	Longitude float64   `json:"longitude" bson:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty" bson:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// LocationUpdateRequest appends a point to the user's history
type LocationUpdateRequest struct {
	UserID    string  `json:"userId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// SafeRoutesRequest asks for synthetic route suggestions between two points
type SafeRoutesRequest struct {
	StartLocation Coordinate        `json:"startLocation"`
	EndLocation   Coordinate        `json:"endLocation"`
	Preferences   map[string]string `json:"preferences,omitempty"`
}

// Coordinate is a bare lat/lng pair
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SafeRoute is a synthetic route suggestion with fabricated safety context.
// This is a placeholder for a future routing engine.
type SafeRoute struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Coordinates   []Coordinate   `json:"coordinates"`
	Duration      string         `json:"duration"`
	Distance      string         `json:"distance"`
	SafetyScore   int            `json:"safetyScore"`
	Features      []string       `json:"features"`
	Warnings      []string       `json:"warnings"`
	SafeZones     []SafeZone     `json:"safeZones"`
	CrimeHotspots []CrimeHotspot `json:"crimeHotspots"`
}

// SafeZone marks a nearby refuge point along a route
type SafeZone struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	Radius    float64 `json:"radius"`
	Contact   string  `json:"contact"`
	Area      string  `json:"area"`
}

// CrimeHotspot marks a risky area along a route
type CrimeHotspot struct {
	ID           string  `json:"id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	CrimeType    string  `json:"crimeType"`
	RiskLevel    string  `json:"riskLevel"`
	Radius       float64 `json:"radius"`
	ReportedDate string  `json:"reportedDate"`
	Description  string  `json:"description"`
	Frequency    int     `json:"frequency"`
	Area         string  `json:"area"`
}
