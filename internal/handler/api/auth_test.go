//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/handler/api"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/usecase/commands"
	"smart-parking/tests/common/httptest"
	usecasemock "smart-parking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockAuth = &usecasemock.MockAuthUseCase{}
	s.handler = api.NewAuthHandler(s.mockAuth)

	s.router.POST("/api/login", s.handler.Login)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/login"
	reqBody := map[string]any{"email": "alice@example.com", "password": "password"}
	creds, err := user.NewCredentials("alice@example.com", "password")
	s.Require().NoError(err)

	s.Run("success: returns 200 with a token and the user", func() {
		s.mockAuth.On("Login", mock.Anything, creds).
			Return(commands.LoginResult{Token: "signed-token", UserID: 7, Email: "alice@example.com"}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-token", response.Token)
		s.Equal(int64(7), response.User.ID)
		s.Equal("alice@example.com", response.User.Email)
	})

	s.Run("error: 400 on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"email": "alice@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on malformed email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"email": "not-an-email", "password": "password"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockAuth.On("Login", mock.Anything, creds).
			Return(commands.LoginResult{}, commands.ErrInvalidCredentials).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockAuth.On("Login", mock.Anything, creds).
			Return(commands.LoginResult{}, errors.New("database down")).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
