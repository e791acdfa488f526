package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	ct "github.com/sportcenter/court-booking-backend/court"
)

type CourtService interface {
	GetAllCourts(ctx context.Context) ([]ct.Court, error)
	FindCourtByID(ctx context.Context, id string) (ct.Court, error)
	CreateCourt(ctx context.Context, c ct.Court) (ct.Court, error)
	ModifyCourt(ctx context.Context, c ct.Court) error
	RemoveCourt(ctx context.Context, id string) error
}

type CourtRequest struct {
	Name       string  `json:"name" binding:"required"`
	Sport      string  `json:"sport" binding:"required"`
	HourlyRate float64 `json:"hourlyRate" binding:"required,gt=0"`
	Status     string  `json:"status" binding:"omitempty,oneof=AVAILABLE MAINTENANCE"`
}

type CourtHandler struct {
	service CourtService
}

func NewCourtHandler(service CourtService) *CourtHandler {
	return &CourtHandler{service: service}
}

func (h *CourtHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	adminOnly := AdminOnly()
	rg.GET("", h.ListAll)
	rg.GET("/:id", h.GetByID)
	rg.POST("", auth, adminOnly, h.Create)
	rg.PUT("/:id", auth, adminOnly, h.Modify)
	rg.DELETE("/:id", auth, adminOnly, h.Remove)
}

func (h *CourtHandler) ListAll(c *gin.Context) {
	if courts, err := h.service.GetAllCourts(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve courts",
		})
	} else {
		c.IndentedJSON(http.StatusOK, courts)
	}
}

func (h *CourtHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	found, err := h.service.FindCourtByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, ct.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "court not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch court",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, found)
}

func (h *CourtHandler) Create(c *gin.Context) {
	var req CourtRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	created, err := h.service.CreateCourt(c.Request.Context(), ct.Court{
		Name:       req.Name,
		Sport:      req.Sport,
		HourlyRate: req.HourlyRate,
		Status:     req.Status,
	})

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create court",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *CourtHandler) Modify(c *gin.Context) {
	var req CourtRequest
	id := c.Param("id")

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	err := h.service.ModifyCourt(c.Request.Context(), ct.Court{
		ID:         id,
		Name:       req.Name,
		Sport:      req.Sport,
		HourlyRate: req.HourlyRate,
		Status:     req.Status,
	})

	if err != nil {
		c.Error(err)
		if errors.Is(err, ct.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "court not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to modify court",
			})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "court modified"})
}

func (h *CourtHandler) Remove(c *gin.Context) {
	id := c.Param("id")

	err := h.service.RemoveCourt(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, ct.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "court not found",
			})
		} else if errors.Is(err, ct.ErrCourtInUse) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "court has reservations and cannot be deleted",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to delete court",
			})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "court deleted"})
}
