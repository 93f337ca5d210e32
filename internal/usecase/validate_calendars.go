package usecase

import (
	"context"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
)

// CalendarCheck is the validation outcome of one calendar file.
type CalendarCheck struct {
	Ref   domain.CalendarRef
	Days  int
	Count int
	Err   error
}

type ValidateCalendars struct {
	catalog ports.ReminderCatalog
	loader  ports.ReminderLoader
}

func NewValidateCalendars(catalog ports.ReminderCatalog, loader ports.ReminderLoader) *ValidateCalendars {
	return &ValidateCalendars{catalog: catalog, loader: loader}
}

// Execute loads every calendar under root without stopping at the first
// broken file. The returned error is only set when listing fails or ctx ends.
func (uc *ValidateCalendars) Execute(ctx context.Context, root string) ([]CalendarCheck, error) {
	refs, err := uc.catalog.ListCalendars(root)
	if err != nil {
		return nil, err
	}

	out := make([]CalendarCheck, 0, len(refs))
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		check := CalendarCheck{Ref: ref}
		cal, loadErr := uc.loader.LoadCalendar(ref.Path)
		if loadErr != nil {
			check.Err = loadErr
		} else {
			check.Days = len(cal.Days)
			for _, rs := range cal.Days {
				check.Count += len(rs)
			}
		}
		out = append(out, check)
	}
	return out, nil
}

// Failed counts the checks that carry an error.
func Failed(checks []CalendarCheck) int {
	n := 0
	for _, c := range checks {
		if c.Err != nil {
			n++
		}
	}
	return n
}
