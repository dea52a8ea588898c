package ferias

import (
	"time"

	"ferias-api/internal/pkg/errs"
)

var (
	ErrCamposObrigatorios = errs.New("nome and email are required")
	ErrLimiteDias         = errs.New("total vacation days exceed the cap")
)

// Request is a vacation request before it is persisted. The id and the
// definitive createdAt are assigned by the store.
type Request struct {
	nome      string
	email     string
	periodos  [MaxPeriods]Period
	totalDias int
	createdAt time.Time
}

// NewRequest validates and builds a vacation request. Required fields
// are checked before any date arithmetic. The first MaxPeriods periods
// fill the fixed slots; the rest are dropped without error. totalDias is
// always recomputed here, never taken from the caller.
func NewRequest(nome, email string, periodos []Period, now time.Time) (*Request, error) {
	if nome == "" || email == "" {
		return nil, ErrCamposObrigatorios
	}

	if len(periodos) > MaxPeriods {
		periodos = periodos[:MaxPeriods]
	}

	totalDias := TotalDays(periodos)
	if totalDias > MaxTotalDays {
		return nil, ErrLimiteDias
	}

	r := &Request{
		nome:      nome,
		email:     email,
		totalDias: totalDias,
		createdAt: now,
	}
	copy(r.periodos[:], periodos)
	return r, nil
}

func (r *Request) Nome() string         { return r.nome }
func (r *Request) Email() string        { return r.email }
func (r *Request) TotalDias() int       { return r.totalDias }
func (r *Request) Periodos() []Period   { return r.periodos[:] }
func (r *Request) CreatedAt() time.Time { return r.createdAt }
