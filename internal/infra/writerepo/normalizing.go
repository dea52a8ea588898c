package writerepo

import (
	"context"

	"ferias-api/internal/domain/ferias"
	"ferias-api/internal/infra"
	"ferias-api/internal/pkg/normalize"
	"ferias-api/internal/usecase/commands"
	"ferias-api/internal/usecase/queries"
)

// NormalizingFeriasRepository decorates the write port so every record
// reaches the store with a canonical nome and email, regardless of the
// code path that created it.
type NormalizingFeriasRepository struct {
	inner commands.FeriasRepository
}

func NewNormalizingFeriasRepository(inner commands.FeriasRepository) *NormalizingFeriasRepository {
	return &NormalizingFeriasRepository{inner: inner}
}

func (r *NormalizingFeriasRepository) Create(ctx context.Context, req *ferias.Request) (*queries.FeriasView, error) {
	norm, err := ferias.NewRequest(
		normalize.Name(req.Nome()),
		normalize.Email(req.Email()),
		req.Periodos(),
		req.CreatedAt(),
	)
	if err != nil {
		// normalization never turns a valid request invalid
		return nil, infra.WrapRepoErr("failed to normalize ferias request", err)
	}

	return r.inner.Create(ctx, norm)
}
