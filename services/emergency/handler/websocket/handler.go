package websocket

import (
	"encoding/json"

	gwebsocket "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	ws "github.com/rescuerush/rescuerush/internal/pkg/websocket"
)

// Handler serves the realtime socket: client-originated location updates
// and emergency alerts are rebroadcast to all other connected clients.
type Handler struct {
	manager *ws.Manager
}

// NewHandler creates a new realtime handler over the shared manager.
func NewHandler(manager *ws.Manager) *Handler {
	return &Handler{manager: manager}
}

// HandleWebSocket upgrades the connection after the JWT handshake and runs
// the client's read loop until disconnect.
func (h *Handler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *Handler) handleClient(client *models.WebSocketClient, conn *gwebsocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer func() {
		h.manager.RemoveClient(client.UserID)
		logger.Info("Realtime client disconnected",
			logger.String("user_id", client.UserID),
			logger.Int("clients", h.manager.ClientCount()))
	}()

	logger.Info("Realtime client connected",
		logger.String("user_id", client.UserID),
		logger.Int("clients", h.manager.ClientCount()))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if gwebsocket.IsUnexpectedCloseError(err, gwebsocket.CloseGoingAway, gwebsocket.CloseNormalClosure) {
				logger.Warn("Unexpected realtime close",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return nil
		}

		if err := h.handleMessage(client, &msg); err != nil {
			logger.Error("Error handling realtime message",
				logger.String("user_id", client.UserID),
				logger.String("event", msg.Event),
				logger.ErrorField(err))
		}
	}
}

func (h *Handler) handleMessage(client *models.WebSocketClient, msg *models.WSMessage) error {
	switch msg.Event {
	case ws.EventLocationUpdate:
		return h.handleLocationUpdate(client, msg.Data)
	case ws.EventEmergencyAlert:
		return h.handleEmergencyAlert(client, msg.Data)
	default:
		return h.manager.SendErrorMessage(client.Conn, ws.ErrorInvalidFormat, "Unknown event: "+msg.Event)
	}
}

// handleLocationUpdate rebroadcasts a client's position to every other
// connected client as a location-broadcast event.
func (h *Handler) handleLocationUpdate(client *models.WebSocketClient, data json.RawMessage) error {
	var update models.WSLocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return h.manager.SendErrorMessage(client.Conn, ws.ErrorInvalidFormat, "Invalid location format")
	}
	update.UserID = client.UserID

	h.manager.Broadcast(client.UserID, ws.EventLocationBroadcast, update)
	return nil
}

// handleEmergencyAlert rebroadcasts a client-announced alert summary as a
// new-emergency event.
func (h *Handler) handleEmergencyAlert(client *models.WebSocketClient, data json.RawMessage) error {
	var summary models.AlertSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return h.manager.SendErrorMessage(client.Conn, ws.ErrorInvalidFormat, "Invalid alert format")
	}
	if summary.UserID == "" {
		summary.UserID = client.UserID
	}

	logger.Info("Client-announced emergency rebroadcast",
		logger.String("user_id", client.UserID),
		logger.String("alert_id", summary.ID))

	h.manager.Broadcast(client.UserID, ws.EventNewEmergency, summary)
	return nil
}
