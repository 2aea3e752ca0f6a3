package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/middleware"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/services/emergency/handler/http"
	"github.com/rescuerush/rescuerush/services/emergency/handler/websocket"
)

// Handler coordinates the HTTP and realtime handlers for the emergency
// service
type Handler struct {
	emergencyHandler *http.EmergencyHandler
	evidenceHandler  *http.EvidenceHandler
	wsHandler        *websocket.Handler
	cfg              *models.Config
}

// NewHandler creates and initializes all emergency service handlers
func NewHandler(
	emergencyHandler *http.EmergencyHandler,
	evidenceHandler *http.EvidenceHandler,
	wsHandler *websocket.Handler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		emergencyHandler: emergencyHandler,
		evidenceHandler:  evidenceHandler,
		wsHandler:        wsHandler,
		cfg:              cfg,
	}
}

// RegisterRoutes mounts the emergency routes under the API group and the
// realtime socket at the Echo root.
func (h *Handler) RegisterRoutes(e *echo.Echo, api *echo.Group) {
	protected := api.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	emergencyGroup := protected.Group("/emergency")
	emergencyGroup.POST("/trigger", h.emergencyHandler.Trigger)
	emergencyGroup.GET("/history/:userId", h.emergencyHandler.History)
	emergencyGroup.GET("/:alertId", h.emergencyHandler.GetAlert)
	emergencyGroup.PUT("/cancel/:alertId", h.emergencyHandler.Cancel)
	emergencyGroup.PUT("/resolve/:alertId", h.emergencyHandler.Resolve)

	evidenceGroup := protected.Group("/evidence")
	evidenceGroup.POST("/upload", h.evidenceHandler.Upload)
	evidenceGroup.GET("/:emergencyId", h.evidenceHandler.List)
	evidenceGroup.DELETE("/:emergencyId/:evidenceId", h.evidenceHandler.Delete)

	// The socket authenticates inside the handshake, not via the HTTP
	// JWT middleware, so query-param tokens work for mobile clients.
	e.GET("/ws", h.wsHandler.HandleWebSocket)
}
