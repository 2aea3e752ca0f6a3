package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/internal/utils"
	"github.com/rescuerush/rescuerush/services/emergency"
)

// knownTriggerFields are the modeled keys of the trigger payload; anything
// else is carried into the alert document untouched.
var knownTriggerFields = map[string]struct{}{
	"userId": {}, "triggerType": {}, "location": {}, "safetyAssessment": {},
	"deviceInfo": {}, "immediate": {}, "timestamp": {},
}

// EmergencyHandler handles HTTP requests for the alert pipeline
type EmergencyHandler struct {
	emergencyUC emergency.EmergencyUC
}

// NewEmergencyHandler creates a new emergency handler
func NewEmergencyHandler(emergencyUC emergency.EmergencyUC) *EmergencyHandler {
	return &EmergencyHandler{emergencyUC: emergencyUC}
}

// Trigger runs the alert pipeline. Unknown payload fields are accepted
// and persisted as-is for forward compatibility with newer mobile builds.
func (h *EmergencyHandler) Trigger(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	var req models.TriggerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Warn("Invalid request payload for emergency trigger",
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err == nil {
		for key := range knownTriggerFields {
			delete(raw, key)
		}
		if len(raw) > 0 {
			req.Extra = raw
		}
	}

	if req.UserID == "" {
		if userID, ok := c.Get("user_id").(string); ok {
			req.UserID = userID
		}
	}

	result, err := h.emergencyUC.TriggerAlert(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Emergency alert triggered", result)
}

// GetAlert fetches a single alert by id
func (h *EmergencyHandler) GetAlert(c echo.Context) error {
	alertID := c.Param("alertId")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	alert, err := h.emergencyUC.GetAlert(c.Request().Context(), alertID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert retrieved successfully", alert)
}

// History returns up to the 50 newest alerts for a user
func (h *EmergencyHandler) History(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	entries, err := h.emergencyUC.AlertHistory(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert history retrieved", entries)
}

// Cancel flips an active alert to cancelled; idempotent when already
// cancelled
func (h *EmergencyHandler) Cancel(c echo.Context) error {
	alertID := c.Param("alertId")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	alert, err := h.emergencyUC.CancelAlert(c.Request().Context(), alertID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert cancelled", alert.Summarize())
}

// Resolve marks an active alert as resolved
func (h *EmergencyHandler) Resolve(c echo.Context) error {
	alertID := c.Param("alertId")
	if alertID == "" {
		return utils.BadRequestResponse(c, "Alert ID is required")
	}

	alert, err := h.emergencyUC.ResolveAlert(c.Request().Context(), alertID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert resolved", alert.Summarize())
}
