package api

import (
	"errors"
	"net/http"

	reqdto "ferias-api/internal/handler/dto/request"
	resdto "ferias-api/internal/handler/dto/response"
	"ferias-api/internal/handler/httperr"
	"ferias-api/internal/pkg/cookie"
	"ferias-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary User login
// @Description Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUsuarioInvalido):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Usuário inválido", nil)
		case errors.Is(err, commands.ErrSenhaIncorreta):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Senha incorreta", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetAuthToken(c, result.Token)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Message: "Login bem-sucedido",
		Token:   result.Token,
	})
}
