package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/middleware"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the user service
type Handler struct {
	authHandler     *http.AuthHandler
	contactHandler  *http.ContactHandler
	locationHandler *http.LocationHandler
	cfg             *models.Config
	redisClient     *redis.Client
}

// NewHandler creates and initializes all user service handlers
func NewHandler(
	authHandler *http.AuthHandler,
	contactHandler *http.ContactHandler,
	locationHandler *http.LocationHandler,
	cfg *models.Config,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		authHandler:     authHandler,
		contactHandler:  contactHandler,
		locationHandler: locationHandler,
		cfg:             cfg,
		redisClient:     redisClient,
	}
}

// RegisterRoutes mounts the user service routes under the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	authGroup := api.Group("/auth")
	if h.redisClient != nil {
		authGroup.Use(middleware.AuthRateLimiter(10, time.Minute, h.redisClient))
	}
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.GET("/check-auth", h.authHandler.Verify)

	protected := api.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	contactGroup := protected.Group("/contacts")
	contactGroup.GET("/:userId", h.contactHandler.ListContacts)
	contactGroup.POST("/:userId", h.contactHandler.AddContact)
	contactGroup.PUT("/:userId/:contactId", h.contactHandler.UpdateContact)
	contactGroup.DELETE("/:userId/:contactId", h.contactHandler.RemoveContact)

	locationGroup := protected.Group("/location")
	locationGroup.POST("/update", h.locationHandler.UpdateLocation)
	locationGroup.POST("/safe-routes", h.locationHandler.SafeRoutes)

	protected.POST("/notifications/push-token", h.locationHandler.RegisterPushToken)
}
