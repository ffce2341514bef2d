package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slotly-service/internal/app/config"
	"slotly-service/internal/app/delivery/http/controllers"
	"slotly-service/internal/app/delivery/http/middlewares"
	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/dto/responses"
	"slotly-service/internal/pkg/utils"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) SetPassword(ctx context.Context, request *requests.SetPassword) (*responses.SetPassword, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SetPassword), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionData string) error {
	args := m.Called(ctx, sessionData)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func buildAuthTestRouter(authController *controllers.AuthController, middlewareInstance *middlewares.Middlewares) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Route("/auth", func(r chi.Router) {
		attachAuthRoutes(r, middlewareInstance, authController)
	})
	return router
}

func TestAuthRouter_Login(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1},
	}

	mockAuthUsecase := new(MockAuthUsecase)
	mockSessionService := new(MockSessionService)

	authController := controllers.NewAuthController(logger, mockAuthUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, mockSessionService, internalConfig)

	router := buildAuthTestRouter(authController, middlewareInstance)

	t.Run("valid credentials return a token", func(t *testing.T) {
		mockAuthUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.Login")).
			Return(&responses.Login{Token: "jwt-token", CustomerID: "cus_123", Email: "doc@example.com"}, nil).Once()

		requestBody := requests.Login{
			Email:    "doc@example.com",
			Password: "secret-password",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("missing email is rejected before the usecase", func(t *testing.T) {
		requestBody := requests.Login{
			Password: "secret-password",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed body returns bad request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString("{not-json"))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthRouter_Logout(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1},
	}

	mockAuthUsecase := new(MockAuthUsecase)
	mockSessionService := new(MockSessionService)

	authController := controllers.NewAuthController(logger, mockAuthUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, mockSessionService, internalConfig)

	router := buildAuthTestRouter(authController, middlewareInstance)

	t.Run("without bearer token returns unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/logout", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "Logout")
	})

	t.Run("with garbage token returns unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "Logout")
	})

	t.Run("with valid session deletes it", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-1", internalConfig.JWT.Secret, internalConfig.JWT.ExpTimeInHour)
		assert.NoError(t, err)

		sessionJSON, _ := json.Marshal(models.Session{SessionID: "session-1", Email: "doc@example.com"})
		mockSessionService.On("GetSessionData", mock.Anything, "session-1").Return(string(sessionJSON), nil).Once()
		mockAuthUsecase.On("Logout", mock.Anything, string(sessionJSON)).Return(nil).Once()

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
		mockSessionService.AssertExpectations(t)
	})
}

func TestAuthRouter_SetPassword(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1},
	}

	mockAuthUsecase := new(MockAuthUsecase)
	mockSessionService := new(MockSessionService)

	authController := controllers.NewAuthController(logger, mockAuthUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, mockSessionService, internalConfig)

	router := buildAuthTestRouter(authController, middlewareInstance)

	t.Run("valid request reaches the usecase", func(t *testing.T) {
		mockAuthUsecase.On("SetPassword", mock.Anything, mock.AnythingOfType("*requests.SetPassword")).
			Return(&responses.SetPassword{CustomerID: "cus_123"}, nil).Once()

		requestBody := requests.SetPassword{
			CustomerID: "cus_123",
			Password:   "Str0ngPass!",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/auth/password", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		requestBody := requests.SetPassword{
			CustomerID: "cus_123",
			Password:   "short",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/auth/password", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "SetPassword")
	})
}
