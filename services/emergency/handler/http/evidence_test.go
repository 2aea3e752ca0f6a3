package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/apperrors"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/services/emergency/mocks"
	"github.com/stretchr/testify/assert"
)

func evidenceConfig() *models.Config {
	return &models.Config{
		Evidence: models.EvidenceConfig{MaxSizeBytes: 10 << 20, MaxVideoSizeBytes: 50 << 20},
	}
}

func multipartUpload(t *testing.T, emergencyID, filename, contentType string, payload []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	assert.NoError(t, w.WriteField("emergencyId", emergencyID))

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(payload)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/evidence/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestEvidenceUpload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEvidenceHandler(mockUC, evidenceConfig())

	payload := []byte("fake-jpeg-bytes")
	req := multipartUpload(t, "683a1b2c3d4e5f6a7b8c9d0e", "scene.jpg", "image/jpeg", payload)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	mockUC.EXPECT().
		UploadEvidence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, upload *models.EvidenceUploadRequest) (*models.Evidence, error) {
			assert.Equal(t, "683a1b2c3d4e5f6a7b8c9d0e", upload.EmergencyID)
			assert.Equal(t, "scene.jpg", upload.Filename)
			assert.Equal(t, "image/jpeg", upload.Mimetype)
			assert.Equal(t, payload, upload.Data)
			assert.Equal(t, int64(len(payload)), upload.Size)
			return &models.Evidence{ID: "ev-1", Type: models.EvidencePhoto, Filename: upload.Filename}, nil
		})

	err := h.Upload(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEvidenceUpload_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewEvidenceHandler(mocks.NewMockEmergencyUC(ctrl), evidenceConfig())

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	assert.NoError(t, w.WriteField("emergencyId", "683a1b2c3d4e5f6a7b8c9d0e"))
	assert.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/evidence/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := h.Upload(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvidenceUpload_MissingEmergencyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewEvidenceHandler(mocks.NewMockEmergencyUC(ctrl), evidenceConfig())

	req := multipartUpload(t, "", "scene.jpg", "image/jpeg", []byte("x"))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := h.Upload(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvidenceList_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEvidenceHandler(mockUC, evidenceConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("emergencyId")
	c.SetParamValues("683a1b2c3d4e5f6a7b8c9d0e")

	mockUC.EXPECT().
		ListEvidence(gomock.Any(), "683a1b2c3d4e5f6a7b8c9d0e").
		Return(&models.EvidenceListResult{
			EmergencyID: "683a1b2c3d4e5f6a7b8c9d0e",
			Status:      models.AlertActive,
			Evidence:    []models.Evidence{{ID: "ev-1"}},
		}, nil)

	err := h.List(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEvidenceDelete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEvidenceHandler(mockUC, evidenceConfig())

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("emergencyId", "evidenceId")
	c.SetParamValues("683a1b2c3d4e5f6a7b8c9d0e", "nope")

	mockUC.EXPECT().
		DeleteEvidence(gomock.Any(), "683a1b2c3d4e5f6a7b8c9d0e", "nope").
		Return(apperrors.NotFound("Evidence not found"))

	err := h.Delete(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
