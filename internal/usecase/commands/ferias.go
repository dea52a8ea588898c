package commands

import (
	"context"

	"ferias-api/internal/domain/ferias"
	reqdto "ferias-api/internal/handler/dto/request"
	"ferias-api/internal/pkg/clock"
	"ferias-api/internal/pkg/errs"
	"ferias-api/internal/usecase/queries"
)

var ErrFeriasCreationFailed = errs.New("ferias creation failed")

// FeriasRepository is the narrow write port. The normalizing decorator
// in infra/writerepo wraps it so every create passes through the
// name/email canonicalization.
type FeriasRepository interface {
	Create(ctx context.Context, req *ferias.Request) (*queries.FeriasView, error)
}

type FeriasCommands interface {
	Create(ctx context.Context, req reqdto.CreateFeriasRequest) (*queries.FeriasView, error)
}

type feriasCommandsImpl struct {
	repo  FeriasRepository
	clock clock.Clock
}

func NewFeriasCommands(repo FeriasRepository, clock clock.Clock) FeriasCommands {
	return &feriasCommandsImpl{
		repo:  repo,
		clock: clock,
	}
}

func (f *feriasCommandsImpl) Create(ctx context.Context, req reqdto.CreateFeriasRequest) (*queries.FeriasView, error) {
	periodos, err := req.PeriodosToDomain()
	if err != nil {
		return nil, err
	}

	r, err := ferias.NewRequest(req.Nome, req.Email, periodos, f.clock.Now())
	if err != nil {
		// domain sentinels pass through untouched for the handler mapping
		return nil, err
	}

	view, err := f.repo.Create(ctx, r)
	if err != nil {
		return nil, errs.Mark(err, ErrFeriasCreationFailed)
	}

	return view, nil
}
