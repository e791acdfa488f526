package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sportcenter/court-booking-backend/api"
	mock_api "github.com/sportcenter/court-booking-backend/api/mocks"
	ct "github.com/sportcenter/court-booking-backend/court"
	"github.com/sportcenter/court-booking-backend/user"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var centerCourt = ct.Court{
	ID:         "court-1",
	Name:       "Center Court",
	Sport:      "TENNIS",
	HourlyRate: 40,
	Status:     ct.StatusAvailable,
}

func setupCourtRouter(t *testing.T, authUser user.AuthUser) (*gin.Engine, *gomock.Controller, *mock_api.MockCourtService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockCourtService(ctrl)
	handler := api.NewCourtHandler(mockService)
	handler.Register(router.Group("/api/v1/courts"), setUserInContext(authUser))

	return router, ctrl, mockService
}

func courtBody(c ct.Court) *bytes.Buffer {
	body, _ := json.Marshal(api.CourtRequest{
		Name:       c.Name,
		Sport:      c.Sport,
		HourlyRate: c.HourlyRate,
		Status:     c.Status,
	})

	return bytes.NewBuffer(body)
}

func TestListAllCourts(t *testing.T) {
	router, ctrl, mockService := setupCourtRouter(t, clientUser)
	defer ctrl.Finish()

	courts := []ct.Court{centerCourt}
	courtsJson, _ := json.MarshalIndent(courts, "", "    ")

	mockService.EXPECT().GetAllCourts(gomock.Any()).Return(courts, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/courts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, string(courtsJson), w.Body.String())
}

func TestGetCourtByID(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupCourtRouter(t, clientUser)
		defer ctrl.Finish()

		courtJson, _ := json.MarshalIndent(centerCourt, "", "    ")

		mockService.EXPECT().FindCourtByID(gomock.Any(), "court-1").Return(centerCourt, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/courts/court-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(courtJson), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupCourtRouter(t, clientUser)
		defer ctrl.Finish()

		mockService.EXPECT().FindCourtByID(gomock.Any(), "missing").Return(ct.Court{}, ct.ErrCourtNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/courts/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"court not found"}`, w.Body.String())
	})
}

func TestCreateCourt(t *testing.T) {

	t.Run("admin creates a court", func(t *testing.T) {
		router, ctrl, mockService := setupCourtRouter(t, adminUser)
		defer ctrl.Finish()

		submitted := centerCourt
		submitted.ID = ""
		courtJson, _ := json.Marshal(centerCourt)

		mockService.EXPECT().CreateCourt(gomock.Any(), submitted).Return(centerCourt, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/courts", courtBody(centerCourt))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(courtJson), w.Body.String())
	})

	t.Run("client is forbidden", func(t *testing.T) {
		router, ctrl, mockService := setupCourtRouter(t, clientUser)
		defer ctrl.Finish()

		mockService.EXPECT().CreateCourt(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/courts", courtBody(centerCourt))
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed"}`, w.Body.String())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		router, ctrl, mockService := setupCourtRouter(t, adminUser)
		defer ctrl.Finish()

		invalid := centerCourt
		invalid.Status = "CLOSED"

		mockService.EXPECT().CreateCourt(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/courts", courtBody(invalid))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})
}

func TestModifyCourt(t *testing.T) {

	t.Run("admin modifies a court", func(t *testing.T) {
		router, ctrl, mockService := setupCourtRouter(t, adminUser)
		defer ctrl.Finish()

		updated := centerCourt
		updated.Status = ct.StatusMaintenance

		mockService.EXPECT().ModifyCourt(gomock.Any(), updated).Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/courts/court-1", courtBody(updated))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"court modified"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupCourtRouter(t, adminUser)
		defer ctrl.Finish()

		mockService.EXPECT().ModifyCourt(gomock.Any(), gomock.Any()).Return(ct.ErrCourtNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/courts/missing", courtBody(centerCourt))
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"court not found"}`, w.Body.String())
	})
}

func TestRemoveCourt(t *testing.T) {

	t.Run("admin removes a court", func(t *testing.T) {
		router, ctrl, mockService := setupCourtRouter(t, adminUser)
		defer ctrl.Finish()

		mockService.EXPECT().RemoveCourt(gomock.Any(), "court-1").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/courts/court-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"court deleted"}`, w.Body.String())
	})

	t.Run("court still referenced", func(t *testing.T) {
		router, ctrl, mockService := setupCourtRouter(t, adminUser)
		defer ctrl.Finish()

		mockService.EXPECT().RemoveCourt(gomock.Any(), "court-1").Return(ct.ErrCourtInUse).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/courts/court-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"court has reservations and cannot be deleted"}`, w.Body.String())
	})
}
