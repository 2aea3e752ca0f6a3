package models

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient holds the state of one connected realtime client
type WebSocketClient struct {
	UserID string
	Phone  string
	Conn   *websocket.Conn
}

// WSLocationUpdate is the client-originated location event rebroadcast
// to other connected clients
type WSLocationUpdate struct {
	UserID    string  `json:"userId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"`
	Timestamp string  `json:"timestamp,omitempty"`
}
