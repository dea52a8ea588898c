package queries

import (
	"context"
	"time"

	"ferias-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrFeriasQueryFailed = errs.New("ferias query failed")

// FeriasView mirrors the persisted record shape, period slots flattened.
type FeriasView struct {
	ID        uuid.UUID  `json:"id"`
	Nome      string     `json:"nome"`
	Email     string     `json:"email"`
	TotalDias int        `json:"totalDias"`
	Periodo1I *time.Time `json:"periodo1I"`
	Periodo1F *time.Time `json:"periodo1F"`
	Periodo2I *time.Time `json:"periodo2I"`
	Periodo2F *time.Time `json:"periodo2F"`
	Periodo3I *time.Time `json:"periodo3I"`
	Periodo3F *time.Time `json:"periodo3F"`
	CreatedAt time.Time  `json:"createdAt"`
}

type FeriasReadStore interface {
	ListAll(ctx context.Context) ([]*FeriasView, error)
}

type FeriasQueries interface {
	// List returns every stored request, newest first.
	List(ctx context.Context) ([]*FeriasView, error)
}

type feriasQueriesImpl struct {
	readStore FeriasReadStore
}

func NewFeriasQueries(readStore FeriasReadStore) FeriasQueries {
	return &feriasQueriesImpl{readStore: readStore}
}

func (q *feriasQueriesImpl) List(ctx context.Context) ([]*FeriasView, error) {
	views, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrFeriasQueryFailed)
	}
	return views, nil
}
