package api

import (
	"io"
	"net/http"
	"strings"

	"ferias-api/internal/handler/httperr"
	"ferias-api/internal/pkg/csvconv"
	"ferias-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errEmptyBody = errs.New("empty request body")

type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// @Summary Export JSON as CSV
// @Description Converts the posted JSON document into a downloadable CSV file
// @Tags export
// @Accept json
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /generate-csv [post]
func (h *ExportHandler) GenerateCSV(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Nenhum dado JSON fornecido", nil)
		return
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errEmptyBody, "Nenhum dado JSON fornecido", nil)
		return
	}

	csvText, err := csvconv.Convert(body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erro ao gerar CSV: "+err.Error(), nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="export.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}
