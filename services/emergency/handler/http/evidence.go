package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/internal/utils"
	"github.com/rescuerush/rescuerush/services/emergency"
)

// EvidenceHandler handles multipart evidence uploads and evidence queries
type EvidenceHandler struct {
	emergencyUC emergency.EmergencyUC
	cfg         *models.Config
}

// NewEvidenceHandler creates a new evidence handler
func NewEvidenceHandler(emergencyUC emergency.EmergencyUC, cfg *models.Config) *EvidenceHandler {
	return &EvidenceHandler{emergencyUC: emergencyUC, cfg: cfg}
}

// Upload accepts a single multipart file plus emergencyId. The request
// body is capped before buffering so an oversize upload is rejected
// without reading it fully into memory.
func (h *EvidenceHandler) Upload(c echo.Context) error {
	maxBytes := h.cfg.Evidence.MaxSizeBytes
	if h.cfg.Evidence.VideoEnabled && h.cfg.Evidence.MaxVideoSizeBytes > maxBytes {
		maxBytes = h.cfg.Evidence.MaxVideoSizeBytes
	}
	// Headroom for the multipart framing around the file part.
	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, maxBytes+1<<20)

	emergencyID := c.FormValue("emergencyId")
	if emergencyID == "" {
		return utils.BadRequestResponse(c, "Emergency ID is required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Evidence upload missing file part",
			logger.String("emergency_id", emergencyID),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, "No file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read uploaded file")
	}

	mimetype := fileHeader.Header.Get("Content-Type")
	evidence, err := h.emergencyUC.UploadEvidence(c.Request().Context(), &models.EvidenceUploadRequest{
		EmergencyID: emergencyID,
		Filename:    fileHeader.Filename,
		Mimetype:    mimetype,
		Size:        int64(len(data)),
		Data:        data,
		Description: c.FormValue("description"),
	})
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Evidence uploaded", evidence)
}

// List returns an alert's evidence with minimal context
func (h *EvidenceHandler) List(c echo.Context) error {
	emergencyID := c.Param("emergencyId")
	if emergencyID == "" {
		return utils.BadRequestResponse(c, "Emergency ID is required")
	}

	result, err := h.emergencyUC.ListEvidence(c.Request().Context(), emergencyID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Evidence retrieved", result)
}

// Delete removes a single evidence item from an alert
func (h *EvidenceHandler) Delete(c echo.Context) error {
	emergencyID := c.Param("emergencyId")
	evidenceID := c.Param("evidenceId")
	if emergencyID == "" || evidenceID == "" {
		return utils.BadRequestResponse(c, "Emergency ID and evidence ID are required")
	}

	if err := h.emergencyUC.DeleteEvidence(c.Request().Context(), emergencyID, evidenceID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Evidence removed", nil)
}
