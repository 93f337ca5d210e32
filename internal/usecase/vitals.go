package usecase

import (
	"context"
	"fmt"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
)

// VitalCard is one vital ready for display.
type VitalCard struct {
	domain.Vital
	Value    string       `json:"value"`
	Trend    domain.Trend `json:"trend"`
	Progress *float64     `json:"progress,omitempty"`
}

type ShowVitals struct {
	loader ports.VitalsLoader
}

func NewShowVitals(loader ports.VitalsLoader) *ShowVitals {
	return &ShowVitals{loader: loader}
}

// Execute returns the requested vitals in the given order, or every vital in
// file order when kinds is empty. A requested kind missing from the file is a
// not-found error.
func (uc *ShowVitals) Execute(ctx context.Context, kinds ...domain.VitalKind) ([]VitalCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := uc.loader.LoadVitals()
	if err != nil {
		return nil, err
	}

	vitals := snap.Vitals
	if len(kinds) > 0 {
		vitals = make([]domain.Vital, 0, len(kinds))
		for _, k := range kinds {
			v, ok := snap.Find(k)
			if !ok {
				return nil, &domain.OpError{
					Op:   "vitals.show",
					Kind: domain.KindNotFound,
					Err:  fmt.Errorf("no %s readings: %w", k, domain.ErrNotFound),
				}
			}
			vitals = append(vitals, v)
		}
	}

	cards := make([]VitalCard, 0, len(vitals))
	for _, v := range vitals {
		c := VitalCard{Vital: v, Value: v.Display(), Trend: v.Trend()}
		if pct, ok := v.Progress(); ok {
			c.Progress = &pct
		}
		cards = append(cards, c)
	}
	return cards, nil
}
