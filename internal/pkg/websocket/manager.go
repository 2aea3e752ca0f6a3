package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/rescuerush/rescuerush/internal/pkg/jwt"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

// Realtime event names
const (
	EventLocationUpdate    = "location-update"
	EventLocationBroadcast = "location-broadcast"
	EventEmergencyAlert    = "emergency-alert"
	EventNewEmergency      = "new-emergency"
	EventError             = "error"
)

// Error codes sent to clients
const (
	ErrorInvalidFormat = "INVALID_FORMAT"
)

// Manager manages realtime connections. Delivery is fire-and-forget:
// events are not durable and never retried.
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket handshake using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	token := ""
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	} else {
		// Mobile clients that cannot set headers pass the token as a query param.
		token = c.QueryParam("token")
	}

	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed on realtime handshake",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Phone:  claims.Phone,
	}, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// ClientCount returns the number of connected clients
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// SendMessage sends an event frame to one WebSocket connection
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // nil connections occur in tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return conn.WriteJSON(response)
}

// SendErrorMessage sends an error frame to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends an event to one connected client, if present
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := m.SendMessage(client.Conn, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}

// Broadcast sends an event to every connected client except the sender.
// Per-client send failures are logged and never abort the fan-out.
func (m *Manager) Broadcast(senderID string, event string, data interface{}) {
	m.RLock()
	targets := make([]*models.WebSocketClient, 0, len(m.clients))
	for id, client := range m.clients {
		if id == senderID {
			continue
		}
		targets = append(targets, client)
	}
	m.RUnlock()

	for _, client := range targets {
		if err := m.SendMessage(client.Conn, event, data); err != nil {
			logger.Warn("Error broadcasting to client",
				logger.String("user_id", client.UserID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}
