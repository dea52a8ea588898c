//go:build unit || e2e

package builder

import (
	"time"

	reqdto "ferias-api/internal/handler/dto/request"
	"ferias-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type FeriasBuilder struct {
	Nome     string
	Email    string
	Periodos []reqdto.PeriodoRequest
}

func NewFeriasBuilder() *FeriasBuilder {
	inicio := "2024-07-01"
	fim := "2024-07-10"
	return &FeriasBuilder{
		Nome:  "JOÃO DA SILVA",
		Email: "Joao.Silva@Empresa.com.br",
		Periodos: []reqdto.PeriodoRequest{
			{Inicio: &inicio, Fim: &fim},
		},
	}
}

func (b *FeriasBuilder) WithNome(nome string) *FeriasBuilder {
	b.Nome = nome
	return b
}

func (b *FeriasBuilder) WithEmail(email string) *FeriasBuilder {
	b.Email = email
	return b
}

func (b *FeriasBuilder) WithPeriodos(periodos ...reqdto.PeriodoRequest) *FeriasBuilder {
	b.Periodos = periodos
	return b
}

func (b *FeriasBuilder) BuildDTO() reqdto.CreateFeriasRequest {
	return reqdto.CreateFeriasRequest{
		Nome:     b.Nome,
		Email:    b.Email,
		Periodos: b.Periodos,
	}
}

func (b *FeriasBuilder) BuildView() *queries.FeriasView {
	inicio := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	return &queries.FeriasView{
		ID:        uuid.New(),
		Nome:      "João da Silva",
		Email:     "joao.silva@empresa.com.br",
		TotalDias: 10,
		Periodo1I: &inicio,
		Periodo1F: &fim,
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func Periodo(inicio, fim string) reqdto.PeriodoRequest {
	p := reqdto.PeriodoRequest{}
	if inicio != "" {
		p.Inicio = &inicio
	}
	if fim != "" {
		p.Fim = &fim
	}
	return p
}
