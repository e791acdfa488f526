package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	pm "github.com/sportcenter/court-booking-backend/payment"
	rsv "github.com/sportcenter/court-booking-backend/reservation"
)

type PaymentService interface {
	ProcessPayment(ctx context.Context, reservationID string, amount float64, method string) (pm.Payment, error)
	FindPaymentsPerReservation(ctx context.Context, reservationID string) ([]pm.Payment, error)
}

type ProcessPaymentRequest struct {
	ReservationID string  `json:"reservationId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Method        string  `json:"method" binding:"required"`
}

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Process)
	rg.GET("/reservation/:id", h.ListPerReservation)
}

func (h *PaymentHandler) Process(c *gin.Context) {
	var req ProcessPaymentRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	settled, err := h.service.ProcessPayment(c.Request.Context(), req.ReservationID, req.Amount, req.Method)

	if err != nil {
		c.Error(err)
		if errors.Is(err, rsv.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "reservation not found",
			})
		} else if errors.Is(err, rsv.ErrInvalidReservationState) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "cannot pay a cancelled reservation",
			})
		} else if errors.Is(err, pm.ErrAmountMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "amount does not match court rate for the reserved interval",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to process payment",
			})
		}

		return
	}

	c.JSON(http.StatusCreated, settled)
}

func (h *PaymentHandler) ListPerReservation(c *gin.Context) {
	id := c.Param("id")

	payments, err := h.service.FindPaymentsPerReservation(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to get payments",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, payments)
}
