package api

import (
	"errors"
	"net/http"

	"ferias-api/internal/domain/ferias"
	reqdto "ferias-api/internal/handler/dto/request"
	resdto "ferias-api/internal/handler/dto/response"
	"ferias-api/internal/handler/httperr"
	"ferias-api/internal/usecase/commands"
	"ferias-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FeriasHandler struct {
	feriasCommands commands.FeriasCommands
	feriasQueries  queries.FeriasQueries
}

func NewFeriasHandler(feriasCommands commands.FeriasCommands, feriasQueries queries.FeriasQueries) *FeriasHandler {
	return &FeriasHandler{
		feriasCommands: feriasCommands,
		feriasQueries:  feriasQueries,
	}
}

// @Summary List vacation requests
// @Description Returns every stored request, newest first
// @Tags ferias
// @Produce json
// @Success 200 {array} resdto.FeriasResponse
// @Failure 500 {object} httperr.Response
// @Router /ferias [get]
func (h *FeriasHandler) List(c *gin.Context) {
	views, err := h.feriasQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFeriasViews(views))
}

// @Summary Create vacation request
// @Description Validates the periods and stores a normalized request
// @Tags ferias
// @Accept json
// @Produce json
// @Param request body reqdto.CreateFeriasRequest true "Vacation request"
// @Success 201 {object} resdto.FeriasResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /ferias [post]
func (h *FeriasHandler) Create(c *gin.Context) {
	var req reqdto.CreateFeriasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.feriasCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ferias.ErrCamposObrigatorios):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Nome e email são obrigatórios", nil)
		case errors.Is(err, ferias.ErrLimiteDias):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "O total de férias não pode ultrapassar 30 dias", nil)
		case errors.Is(err, reqdto.ErrDataInvalida):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Formato de data inválido", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFeriasView(view))
}
