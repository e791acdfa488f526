package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sportcenter/court-booking-backend/court"
	rsv "github.com/sportcenter/court-booking-backend/reservation"
	"github.com/sportcenter/court-booking-backend/user"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, res rsv.Reservation) (rsv.Reservation, error)
	CancelReservation(ctx context.Context, id string) (rsv.Reservation, error)
	FindReservationByID(ctx context.Context, id string) (rsv.Reservation, error)
	FindReservationsPerUser(ctx context.Context, userID string) ([]rsv.Reservation, error)
	GetAllReservations(ctx context.Context) ([]rsv.Reservation, error)
}

type CreateReservationRequest struct {
	CourtID   string    `json:"courtId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

type ReservationHandler struct {
	service ReservationService
}

func NewReservationHandler(service ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.POST("", h.Create)
	rg.GET("", adminOnly, h.ListAll)
	rg.GET("/my", h.ListMine)
	rg.GET("/user/:userId", adminOnly, h.ListByUser)
	rg.PUT("/:id/cancel", h.Cancel)
	rg.DELETE("/:id", h.Cancel)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	authUser := c.MustGet("user").(user.AuthUser)

	created, err := h.service.CreateReservation(c.Request.Context(), rsv.Reservation{
		CourtID:   req.CourtID,
		UserID:    authUser.ID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})

	if err != nil {
		c.Error(err)
		if errors.Is(err, rsv.ErrInvalidInterval) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "end time must be after start time",
			})
		} else if errors.Is(err, rsv.ErrScheduleConflict) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "court already reserved for this interval",
			})
		} else if errors.Is(err, rsv.ErrCourtNotBookable) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "court is not bookable",
			})
		} else if errors.Is(err, court.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "court not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to create reservation",
			})
		}

		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ReservationHandler) ListAll(c *gin.Context) {
	if reservations, err := h.service.GetAllReservations(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve reservations",
		})
	} else {
		c.IndentedJSON(http.StatusOK, reservations)
	}
}

func (h *ReservationHandler) ListMine(c *gin.Context) {
	authUser := c.MustGet("user").(user.AuthUser)

	reservations, err := h.service.FindReservationsPerUser(c.Request.Context(), authUser.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to get reservations",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	reservations, err := h.service.FindReservationsPerUser(c.Request.Context(), userID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to get reservations",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	cancelled, err := h.service.CancelReservation(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, rsv.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "reservation not found",
			})
		} else if errors.Is(err, rsv.ErrInvalidReservationState) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid reservation state",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to cancel reservation",
			})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, cancelled)
}
