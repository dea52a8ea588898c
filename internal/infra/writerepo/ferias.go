package writerepo

import (
	"context"

	"ferias-api/internal/domain/ferias"
	"ferias-api/internal/infra"
	"ferias-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FeriasRepository struct {
	db *pgxpool.Pool
}

func NewFeriasRepository(db *pgxpool.Pool) *FeriasRepository {
	return &FeriasRepository{db: db}
}

const insertFeriasSQL = `
INSERT INTO ferias (
	nome, email, total_dias,
	periodo1_i, periodo1_f,
	periodo2_i, periodo2_f,
	periodo3_i, periodo3_f
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at
`

func (r *FeriasRepository) Create(ctx context.Context, req *ferias.Request) (*queries.FeriasView, error) {
	periodos := req.Periodos()

	view := &queries.FeriasView{
		Nome:      req.Nome(),
		Email:     req.Email(),
		TotalDias: req.TotalDias(),
		Periodo1I: periodos[0].Inicio,
		Periodo1F: periodos[0].Fim,
		Periodo2I: periodos[1].Inicio,
		Periodo2F: periodos[1].Fim,
		Periodo3I: periodos[2].Inicio,
		Periodo3F: periodos[2].Fim,
	}

	err := r.db.QueryRow(ctx, insertFeriasSQL,
		view.Nome, view.Email, view.TotalDias,
		view.Periodo1I, view.Periodo1F,
		view.Periodo2I, view.Periodo2F,
		view.Periodo3I, view.Periodo3F,
	).Scan(&view.ID, &view.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert ferias", err)
	}

	return view, nil
}
