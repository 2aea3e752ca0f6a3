package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/apperrors"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/services/emergency/mocks"
	"github.com/stretchr/testify/assert"
)

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestTrigger_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEmergencyHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/emergency/trigger",
		`{"userId":"683a1b2c3d4e5f6a7b8c9d0e","triggerType":"sos","immediate":true}`)

	mockUC.EXPECT().
		TriggerAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.TriggerRequest) (*models.TriggerResult, error) {
			assert.Equal(t, "683a1b2c3d4e5f6a7b8c9d0e", req.UserID)
			assert.Equal(t, models.TriggerSOS, req.TriggerType)
			assert.True(t, req.Immediate)
			return &models.TriggerResult{
				Alert:         &models.AlertSummary{ID: "alert-1", Status: models.AlertActive, ThreatLevel: 7},
				Notifications: &models.NotificationReport{EmailSent: 2, EmailTotal: 2},
			}, nil
		})

	err := h.Trigger(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Emergency alert triggered", response["message"])
}

func TestTrigger_UnknownFieldsCollected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEmergencyHandler(mockUC)

	e := echo.New()
	c, _ := newJSONContext(e, http.MethodPost, "/api/emergency/trigger",
		`{"userId":"683a1b2c3d4e5f6a7b8c9d0e","triggerType":"sos","futureField":{"nested":true},"anotherOne":42}`)

	mockUC.EXPECT().
		TriggerAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.TriggerRequest) (*models.TriggerResult, error) {
			assert.Len(t, req.Extra, 2)
			assert.Contains(t, req.Extra, "futureField")
			assert.Contains(t, req.Extra, "anotherOne")
			return &models.TriggerResult{Alert: &models.AlertSummary{}, Notifications: &models.NotificationReport{}}, nil
		})

	err := h.Trigger(c)
	assert.NoError(t, err)
}

func TestTrigger_UserIDFromToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEmergencyHandler(mockUC)

	e := echo.New()
	c, _ := newJSONContext(e, http.MethodPost, "/api/emergency/trigger", `{"triggerType":"shake"}`)
	c.Set("user_id", "683a1b2c3d4e5f6a7b8c9d0e")

	mockUC.EXPECT().
		TriggerAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.TriggerRequest) (*models.TriggerResult, error) {
			assert.Equal(t, "683a1b2c3d4e5f6a7b8c9d0e", req.UserID)
			return &models.TriggerResult{Alert: &models.AlertSummary{}, Notifications: &models.NotificationReport{}}, nil
		})

	err := h.Trigger(c)
	assert.NoError(t, err)
}

func TestTrigger_MissingUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEmergencyHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/emergency/trigger", `{"triggerType":"sos"}`)

	mockUC.EXPECT().
		TriggerAlert(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.BadRequest("User ID is required"))

	err := h.Trigger(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrigger_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewEmergencyHandler(mocks.NewMockEmergencyUC(ctrl))

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/emergency/trigger", `{not json`)

	err := h.Trigger(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistory_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEmergencyHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("683a1b2c3d4e5f6a7b8c9d0e")

	mockUC.EXPECT().
		AlertHistory(gomock.Any(), "683a1b2c3d4e5f6a7b8c9d0e").
		Return([]models.AlertHistoryEntry{}, nil)

	err := h.History(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancel_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEmergencyHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("alertId")
	c.SetParamValues("deadbeefdeadbeefdeadbeef")

	mockUC.EXPECT().
		CancelAlert(gomock.Any(), "deadbeefdeadbeefdeadbeef").
		Return(nil, apperrors.NotFound("Alert not found"))

	err := h.Cancel(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Alert not found", response["error"])
}

func TestResolve_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmergencyUC(ctrl)
	h := NewEmergencyHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("alertId")
	c.SetParamValues("683a1b2c3d4e5f6a7b8c9d0e")

	mockUC.EXPECT().
		ResolveAlert(gomock.Any(), "683a1b2c3d4e5f6a7b8c9d0e").
		Return(&models.EmergencyAlert{Status: models.AlertResolved}, nil)

	err := h.Resolve(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
