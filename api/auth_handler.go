package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sportcenter/court-booking-backend/user"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (user.User, error)
	Login(ctx context.Context, email, password string) (user.User, string, error)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/register", h.SignUp)
	rg.POST("/login", h.Login)
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req RegisterRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid registration payload",
		})
		return
	}

	// role is never taken from the request, self-registration is CLIENT only
	created, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password, user.RoleClient)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "email already in use",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to register user",
			})
		}

		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid login payload",
		})
		return
	}

	loggedIn, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid credentials",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to log in",
			})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"user":  loggedIn,
		"token": token,
	})
}
