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
	"github.com/sportcenter/court-booking-backend/user"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockAuthService(ctrl)
	handler := api.NewAuthHandler(mockService)
	handler.Register(router.Group("/api/v1/auth"))

	return router, ctrl, mockService
}

func TestSignUp(t *testing.T) {

	t.Run("created", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		created := user.User{
			ID:    "user-1",
			Name:  "John Doe",
			Email: "john.doe@example.com",
			Role:  user.RoleClient,
		}
		createdJson, _ := json.Marshal(created)

		mockService.EXPECT().Register(gomock.Any(), "John Doe", "john.doe@example.com", "secret123", user.RoleClient).Return(created, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register",
			bytes.NewBufferString(`{"name":"John Doe","email":"john.doe@example.com","password":"secret123"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(createdJson), w.Body.String())
	})

	t.Run("requested role is ignored", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Register(gomock.Any(), "John Doe", "john.doe@example.com", "secret123", user.RoleClient).Return(user.User{}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register",
			bytes.NewBufferString(`{"name":"John Doe","email":"john.doe@example.com","password":"secret123","role":"ADMIN"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register",
			bytes.NewBufferString(`{"name":"John Doe","email":"john.doe@example.com","password":"short"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid registration payload"}`, w.Body.String())
	})

	t.Run("duplicate email", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(user.User{}, user.ErrEmailTaken).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register",
			bytes.NewBufferString(`{"name":"John Doe","email":"john.doe@example.com","password":"secret123"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"email already in use"}`, w.Body.String())
	})
}

func TestLogin(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		loggedIn := user.User{
			ID:    "user-1",
			Name:  "John Doe",
			Email: "john.doe@example.com",
			Role:  user.RoleClient,
		}
		loggedInJson, _ := json.Marshal(loggedIn)

		mockService.EXPECT().Login(gomock.Any(), "john.doe@example.com", "secret123").Return(loggedIn, "signed-token", nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login",
			bytes.NewBufferString(`{"email":"john.doe@example.com","password":"secret123"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"user":`+string(loggedInJson)+`,"token":"signed-token"}`, w.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Login(gomock.Any(), "john.doe@example.com", "wrong").Return(user.User{}, "", user.ErrInvalidCredentials).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login",
			bytes.NewBufferString(`{"email":"john.doe@example.com","password":"wrong"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid credentials"}`, w.Body.String())
	})
}

func TestAuthMiddleware(t *testing.T) {

	setupProtectedRoute := func(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockTokenVerifier) {
		t.Helper()
		ctrl := gomock.NewController(t)

		gin.SetMode(gin.TestMode)
		router := gin.Default()
		verifier := mock_api.NewMockTokenVerifier(ctrl)
		router.GET("/protected", api.Auth(verifier), func(c *gin.Context) {
			authUser := c.MustGet("user").(user.AuthUser)
			c.JSON(http.StatusOK, gin.H{"id": authUser.ID})
		})

		return router, ctrl, verifier
	}

	t.Run("valid token reaches the handler", func(t *testing.T) {
		router, ctrl, verifier := setupProtectedRoute(t)
		defer ctrl.Finish()

		verifier.EXPECT().VerifyToken("good-token").Return(clientUser, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"id":"user-1"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		router, ctrl, verifier := setupProtectedRoute(t)
		defer ctrl.Finish()

		verifier.EXPECT().VerifyToken(gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing authentication"}`, w.Body.String())
	})

	t.Run("not a bearer token", func(t *testing.T) {
		router, ctrl, verifier := setupProtectedRoute(t)
		defer ctrl.Finish()

		verifier.EXPECT().VerifyToken(gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid authorization header"}`, w.Body.String())
	})

	t.Run("rejected token", func(t *testing.T) {
		router, ctrl, verifier := setupProtectedRoute(t)
		defer ctrl.Finish()

		verifier.EXPECT().VerifyToken("bad-token").Return(user.AuthUser{}, user.ErrInvalidToken).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid authentication"}`, w.Body.String())
	})
}
