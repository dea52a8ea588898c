package response

import (
	"time"

	"ferias-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FeriasResponse struct {
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

func FromFeriasView(rm *queries.FeriasView) *FeriasResponse {
	var resp FeriasResponse
	// field-for-field copy, the view and the response share the shape
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromFeriasViews(rms []*queries.FeriasView) []*FeriasResponse {
	out := make([]*FeriasResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromFeriasView(rm))
	}
	return out
}
