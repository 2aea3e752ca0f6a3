package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/internal/utils"
	"github.com/rescuerush/rescuerush/services/users"
)

// ContactHandler handles HTTP requests for the emergency contact directory
type ContactHandler struct {
	userUC users.UserUC
}

// NewContactHandler creates a new contact handler
func NewContactHandler(userUC users.UserUC) *ContactHandler {
	return &ContactHandler{userUC: userUC}
}

// ListContacts returns the user's contacts sorted by priority
func (h *ContactHandler) ListContacts(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	contacts, err := h.userUC.ListContacts(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Contacts retrieved successfully", contacts)
}

// AddContact appends a new emergency contact
func (h *ContactHandler) AddContact(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	var req models.AddContactRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for contact creation",
			logger.ErrorField(err),
			logger.String("user_id", userID))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	contact, err := h.userUC.AddContact(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Contact added successfully", contact)
}

// UpdateContact patches one contact's fields
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	userID := c.Param("userId")
	contactID := c.Param("contactId")
	if userID == "" || contactID == "" {
		return utils.BadRequestResponse(c, "User ID and contact ID are required")
	}

	var req models.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	contact, err := h.userUC.UpdateContact(c.Request().Context(), userID, contactID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Contact updated successfully", contact)
}

// RemoveContact deletes one contact and renumbers the rest
func (h *ContactHandler) RemoveContact(c echo.Context) error {
	userID := c.Param("userId")
	contactID := c.Param("contactId")
	if userID == "" || contactID == "" {
		return utils.BadRequestResponse(c, "User ID and contact ID are required")
	}

	if err := h.userUC.RemoveContact(c.Request().Context(), userID, contactID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Contact removed successfully", nil)
}
