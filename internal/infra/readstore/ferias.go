package readstore

import (
	"context"

	"ferias-api/internal/infra"
	"ferias-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FeriasReadStore struct {
	db *pgxpool.Pool
}

func NewFeriasReadStore(db *pgxpool.Pool) *FeriasReadStore {
	return &FeriasReadStore{db: db}
}

const listFeriasSQL = `
SELECT id, nome, email, total_dias,
       periodo1_i, periodo1_f,
       periodo2_i, periodo2_f,
       periodo3_i, periodo3_f,
       created_at
FROM ferias
ORDER BY created_at DESC
`

func (r *FeriasReadStore) ListAll(ctx context.Context) ([]*queries.FeriasView, error) {
	rows, err := r.db.Query(ctx, listFeriasSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ferias", err)
	}
	defer rows.Close()

	views := make([]*queries.FeriasView, 0)
	for rows.Next() {
		var v queries.FeriasView
		if err := rows.Scan(
			&v.ID, &v.Nome, &v.Email, &v.TotalDias,
			&v.Periodo1I, &v.Periodo1F,
			&v.Periodo2I, &v.Periodo2F,
			&v.Periodo3I, &v.Periodo3F,
			&v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ferias row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ferias rows", err)
	}

	return views, nil
}
