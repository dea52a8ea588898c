package ferias

import "time"

const (
	// MaxTotalDays caps the aggregate vacation days per request.
	MaxTotalDays = 30

	// MaxPeriods is the number of persisted period slots. Extra periods
	// supplied by the caller are silently dropped.
	MaxPeriods = 3
)

// Period is one contiguous vacation block. Either bound may be absent;
// the period only counts toward the total when both are present.
type Period struct {
	Inicio *time.Time
	Fim    *time.Time
}

func (p Period) Complete() bool {
	return p.Inicio != nil && p.Fim != nil
}

// Days is the inclusive day count of a complete period. A reversed
// period (fim before inicio) yields a non-positive count and is left to
// flow into the total untouched.
func (p Period) Days() int {
	if !p.Complete() {
		return 0
	}
	return int(p.Fim.Sub(*p.Inicio)/(24*time.Hour)) + 1
}

// TotalDays sums the inclusive day counts of all complete periods.
// Incomplete periods contribute zero.
func TotalDays(periods []Period) int {
	total := 0
	for _, p := range periods {
		total += p.Days()
	}
	return total
}
