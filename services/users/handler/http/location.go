package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/internal/utils"
	"github.com/rescuerush/rescuerush/services/users"
)

// LocationHandler handles HTTP requests for location history, safe routes,
// and push-token registration
type LocationHandler struct {
	userUC users.UserUC
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(userUC users.UserUC) *LocationHandler {
	return &LocationHandler{userUC: userUC}
}

// UpdateLocation appends a point to the caller's location history
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	point, err := h.userUC.UpdateLocation(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", point)
}

// SafeRoutes returns synthetic route suggestions between two points
func (h *LocationHandler) SafeRoutes(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SafeRoutesRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	routes, err := h.userUC.SafeRoutes(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Safe routes calculated", routes)
}

// RegisterPushToken stores the caller's device push token
func (h *LocationHandler) RegisterPushToken(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PushTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.RegisterPushToken(c.Request().Context(), userID, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Push token registered", nil)
}
