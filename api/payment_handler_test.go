package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sportcenter/court-booking-backend/api"
	mock_api "github.com/sportcenter/court-booking-backend/api/mocks"
	pm "github.com/sportcenter/court-booking-backend/payment"
	rsv "github.com/sportcenter/court-booking-backend/reservation"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupPaymentRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockPaymentService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockPaymentService(ctrl)
	handler := api.NewPaymentHandler(mockService)
	handler.Register(router.Group("/api/v1/payments"))

	return router, ctrl, mockService
}

func paymentBody(reservationID string, amount float64, method string) *bytes.Buffer {
	body, _ := json.Marshal(api.ProcessPaymentRequest{
		ReservationID: reservationID,
		Amount:        amount,
		Method:        method,
	})

	return bytes.NewBuffer(body)
}

func TestProcessPayment(t *testing.T) {

	t.Run("settled", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t)
		defer ctrl.Finish()

		settled := pm.Payment{
			ID:            "pay-1",
			ReservationID: "res-1",
			Amount:        60,
			Method:        "card",
			Status:        pm.StatusCompleted,
			SettledAt:     time.Date(2026, time.April, 2, 19, 30, 0, 0, time.UTC),
		}
		settledJson, _ := json.Marshal(settled)

		mockService.EXPECT().ProcessPayment(gomock.Any(), "res-1", 60.0, "card").Return(settled, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", paymentBody("res-1", 60, "card"))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(settledJson), w.Body.String())
	})

	t.Run("missing amount", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ProcessPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", bytes.NewBufferString(`{"reservationId":"res-1","method":"card"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("reservation not found", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ProcessPayment(gomock.Any(), "missing", 60.0, "card").Return(pm.Payment{}, rsv.ErrReservationNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", paymentBody("missing", 60, "card"))
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"reservation not found"}`, w.Body.String())
	})

	t.Run("cancelled reservation", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ProcessPayment(gomock.Any(), "res-1", 60.0, "card").Return(pm.Payment{}, rsv.ErrInvalidReservationState).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", paymentBody("res-1", 60, "card"))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"cannot pay a cancelled reservation"}`, w.Body.String())
	})

	t.Run("amount mismatch", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ProcessPayment(gomock.Any(), "res-1", 45.0, "card").Return(pm.Payment{}, pm.ErrAmountMismatch).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", paymentBody("res-1", 45, "card"))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"amount does not match court rate for the reserved interval"}`, w.Body.String())
	})
}

func TestListPaymentsPerReservation(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t)
		defer ctrl.Finish()

		payments := []pm.Payment{{
			ID:            "pay-1",
			ReservationID: "res-1",
			Amount:        60,
			Method:        "card",
			Status:        pm.StatusCompleted,
			SettledAt:     time.Date(2026, time.April, 2, 19, 30, 0, 0, time.UTC),
		}}
		paymentsJson, _ := json.MarshalIndent(payments, "", "    ")

		mockService.EXPECT().FindPaymentsPerReservation(gomock.Any(), "res-1").Return(payments, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/payments/reservation/res-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(paymentsJson), w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindPaymentsPerReservation(gomock.Any(), "res-1").Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/payments/reservation/res-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to get payments"}`, w.Body.String())
	})
}
