package request

import (
	"time"

	"ferias-api/internal/domain/ferias"
	"ferias-api/internal/pkg/errs"
)

var ErrDataInvalida = errs.New("invalid period date")

const dateLayout = "2006-01-02"

type PeriodoRequest struct {
	Inicio *string `json:"inicio"`
	Fim    *string `json:"fim"`
}

type CreateFeriasRequest struct {
	Nome     string           `json:"nome"`
	Email    string           `json:"email"`
	Periodos []PeriodoRequest `json:"periodos"`
}

// PeriodosToDomain parses the period bounds. Absent and empty-string
// bounds stay nil; a malformed date is rejected instead of being
// persisted as garbage.
func (r *CreateFeriasRequest) PeriodosToDomain() ([]ferias.Period, error) {
	periodos := make([]ferias.Period, 0, len(r.Periodos))
	for _, p := range r.Periodos {
		inicio, err := parseDate(p.Inicio)
		if err != nil {
			return nil, err
		}
		fim, err := parseDate(p.Fim)
		if err != nil {
			return nil, err
		}
		periodos = append(periodos, ferias.Period{Inicio: inicio, Fim: fim})
	}
	return periodos, nil
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, *raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, errs.Mark(err, ErrDataInvalida)
	}
	t = t.UTC().Truncate(24 * time.Hour)
	return &t, nil
}
