package usecase

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rescuerush/rescuerush/internal/pkg/apperrors"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

// UploadEvidence validates and attaches one media file to an active alert.
// The url is an object-store reference when storage is configured, a data
// URI otherwise.
func (u *EmergencyUC) UploadEvidence(ctx context.Context, req *models.EvidenceUploadRequest) (*models.Evidence, error) {
	if req.EmergencyID == "" {
		return nil, apperrors.BadRequest("Emergency ID is required")
	}
	if len(req.Data) == 0 {
		return nil, apperrors.BadRequest("No file uploaded")
	}

	evidenceType, err := u.classifyEvidence(req.Mimetype)
	if err != nil {
		return nil, err
	}

	limit := u.cfg.Evidence.MaxSizeBytes
	if evidenceType == models.EvidenceVideo {
		limit = u.cfg.Evidence.MaxVideoSizeBytes
	}
	if req.Size > limit {
		return nil, apperrors.BadRequestf("File exceeds the %d MB limit", limit/(1<<20))
	}

	alert, err := u.loadAlert(ctx, req.EmergencyID)
	if err != nil {
		return nil, err
	}
	if alert.Status.Terminal() {
		return nil, apperrors.Conflict("Cannot attach evidence to a closed alert")
	}

	id := uuid.New().String()
	key := fmt.Sprintf("evidence/%s/%s%s", req.EmergencyID, id, path.Ext(req.Filename))
	url, err := u.evidence.Put(ctx, key, bytes.NewReader(req.Data), req.Size, req.Mimetype)
	if err != nil {
		return nil, apperrors.Internal("Failed to store evidence", err)
	}

	evidence := models.Evidence{
		ID:          id,
		Type:        evidenceType,
		Filename:    req.Filename,
		URL:         url,
		Size:        req.Size,
		Mimetype:    req.Mimetype,
		UploadedAt:  u.now(),
		Description: req.Description,
	}

	if err := u.alertRepo.AppendEvidence(ctx, req.EmergencyID, evidence); err != nil {
		return nil, apperrors.Internal("Failed to attach evidence", err)
	}

	logger.Info("Evidence attached",
		logger.String("alert_id", req.EmergencyID),
		logger.String("evidence_id", id),
		logger.String("type", string(evidenceType)),
		logger.Int64("size", req.Size))

	return &evidence, nil
}

// ListEvidence returns an alert's evidence with minimal context.
func (u *EmergencyUC) ListEvidence(ctx context.Context, emergencyID string) (*models.EvidenceListResult, error) {
	alert, err := u.loadAlert(ctx, emergencyID)
	if err != nil {
		return nil, err
	}

	evidence := alert.Evidence
	if evidence == nil {
		evidence = []models.Evidence{}
	}

	return &models.EvidenceListResult{
		EmergencyID: alert.ID.Hex(),
		Status:      alert.Status,
		Evidence:    evidence,
	}, nil
}

// DeleteEvidence removes a single evidence item from an alert.
func (u *EmergencyUC) DeleteEvidence(ctx context.Context, emergencyID, evidenceID string) error {
	if evidenceID == "" {
		return apperrors.BadRequest("Evidence ID is required")
	}

	alert, err := u.loadAlert(ctx, emergencyID)
	if err != nil {
		return err
	}

	found := false
	for _, ev := range alert.Evidence {
		if ev.ID == evidenceID {
			found = true
			break
		}
	}
	if !found {
		return apperrors.NotFound("Evidence not found")
	}

	if err := u.alertRepo.RemoveEvidence(ctx, emergencyID, evidenceID); err != nil {
		return apperrors.Internal("Failed to remove evidence", err)
	}
	return nil
}

// classifyEvidence derives the evidence type from the mimetype prefix.
// Video is gated behind configuration; anything else is rejected.
func (u *EmergencyUC) classifyEvidence(mimetype string) (models.EvidenceType, error) {
	switch {
	case strings.HasPrefix(mimetype, "image/"):
		return models.EvidencePhoto, nil
	case strings.HasPrefix(mimetype, "audio/"):
		return models.EvidenceAudio, nil
	case strings.HasPrefix(mimetype, "video/"):
		if !u.cfg.Evidence.VideoEnabled {
			return "", apperrors.BadRequest("Video evidence is not enabled")
		}
		return models.EvidenceVideo, nil
	default:
		return "", apperrors.BadRequestf("Unsupported evidence mimetype: %s", mimetype)
	}
}
