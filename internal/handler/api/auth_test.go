//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ferias-api/internal/handler/api"
	resdto "ferias-api/internal/handler/dto/response"
	"ferias-api/internal/pkg/cookie"
	"ferias-api/internal/pkg/errs"
	"ferias-api/internal/usecase/commands"
	"ferias-api/tests/common/builder"
	"ferias-api/tests/common/httptest"
	"ferias-api/tests/common/testutil"
	commandsmock "ferias-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/auth/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	expectedToken := "bWFyaWEuc2lsdmE6MTcxNzI0MzIwMDAwMA=="

	s.Run("success: returns 200 OK and sets the auth cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{
				Username: reqBody.Username,
				Token:    expectedToken,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Login bem-sucedido", response.Message)
		s.Equal(expectedToken, response.Token)

		authCookie := httptest.ExtractCookie(rec, cookie.AuthTokenCookieName)
		s.Require().NotNil(authCookie)
		s.Equal(expectedToken, authCookie.Value)
		s.Equal("/", authCookie.Path)
		s.False(authCookie.HttpOnly)
	})

	s.Run("error: 401 for unknown user", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUsuarioInvalido).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Usuário inválido")
	})

	s.Run("error: 401 for wrong password", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSenhaIncorreta).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Senha incorreta")
	})

	s.Run("error: 500 for unexpected failures", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 400 for malformed JSON body", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "{not json", "application/json")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("empty credentials still reach the command", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("username", ""), testutil.Field("password", ""))
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUsuarioInvalido).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Usuário inválido")
	})
}
