//go:build e2e

package ferias_test

import (
	"encoding/base64"
	"net/http"
	"strings"
	"testing"
	"time"

	resdto "ferias-api/internal/handler/dto/response"
	"ferias-api/internal/pkg/cookie"
	"ferias-api/tests/common/builder"
	"ferias-api/tests/common/dbtest"
	"ferias-api/tests/common/httptest"
	"ferias-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/auth/login"
	feriasURL = "/ferias"
	csvURL    = "/generate-csv"
)

type feriasSuite struct {
	e2e.SharedSuite
}

func TestFeriasSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(feriasSuite))
}

func (s *feriasSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestUser(s.T(), s.DB, "maria.silva", "senha123")
}

func (s *feriasSuite) TestLogin() {
	s.Run("login válido retorna token e cookie", func() {
		t := s.T()

		reqBody := builder.NewAuthBuilder().BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody)

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
		require.Equal(t, "Login bem-sucedido", response.Message)

		decoded, err := base64.StdEncoding.DecodeString(response.Token)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(decoded), "maria.silva:"))

		authCookie := httptest.ExtractCookie(w, cookie.AuthTokenCookieName)
		require.NotNil(t, authCookie)
		require.Equal(t, response.Token, authCookie.Value)
	})

	s.Run("usuário desconhecido recebe 401", func() {
		t := s.T()

		reqBody := builder.NewAuthBuilder().WithUsername("nao.existe").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Usuário inválido")
	})

	s.Run("senha errada recebe 401", func() {
		t := s.T()

		reqBody := builder.NewAuthBuilder().WithPassword("errada").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Senha incorreta")
	})
}

func (s *feriasSuite) TestCreateAndList() {
	s.Run("criação normaliza nome e email e a listagem vem em ordem decrescente", func() {
		t := s.T()

		first := builder.NewFeriasBuilder().
			WithNome("JOÃO DA SILVA").
			WithEmail("Joao.Silva@Empresa.com.br").
			BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, feriasURL, first)

		var created resdto.FeriasResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "João da Silva", created.Nome)
		require.Equal(t, "joao.silva@empresa.com.br", created.Email)
		require.Equal(t, 10, created.TotalDias)

		second := builder.NewFeriasBuilder().
			WithNome("MARIA DOS SANTOS").
			WithEmail("maria@empresa.com.br").
			WithPeriodos(builder.Periodo("2024-09-02", "2024-09-06")).
			BuildDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, feriasURL, second)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, feriasURL, nil)

		var list []*resdto.FeriasResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 2)
		require.Equal(t, "Maria dos Santos", list[0].Nome)
		require.Equal(t, "João da Silva", list[1].Nome)

		opts := []cmp.Option{
			cmpopts.EquateApproxTime(time.Second),
		}
		if diff := cmp.Diff(&created, list[1], opts...); diff != "" {
			t.Errorf("o registro listado difere do registro criado (-want +got):\n%s", diff)
		}
	})

	s.Run("pedido acima de 30 dias é rejeitado", func() {
		t := s.T()

		reqBody := builder.NewFeriasBuilder().
			WithPeriodos(builder.Periodo("2024-07-01", "2024-08-15")).
			BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, feriasURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "O total de férias não pode ultrapassar 30 dias")
	})

	s.Run("campos obrigatórios ausentes são rejeitados", func() {
		t := s.T()

		reqBody := builder.NewFeriasBuilder().WithNome("").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, feriasURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Nome e email são obrigatórios")
	})
}

func (s *feriasSuite) TestGenerateCSV() {
	s.Run("exporta a listagem como CSV", func() {
		t := s.T()

		body := `[{"nome":"João da Silva","totalDias":10},{"nome":"Maria dos Santos","totalDias":5}]`
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, csvURL, body, "application/json")

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Header().Get("Content-Type"), "text/csv")
		require.Contains(t, w.Header().Get("Content-Disposition"), "export.csv")
		require.Equal(t, "nome,totalDias\nJoão da Silva,10\nMaria dos Santos,5\n", w.Body.String())
	})

	s.Run("corpo vazio recebe 400", func() {
		t := s.T()

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, csvURL, "", "application/json")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Nenhum dado JSON fornecido")
	})
}
