package yamlreminders

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

func mapCalendar(path, name string, yc yamlCalendar) (domain.ReminderCalendar, error) {
	if n := strings.TrimSpace(yc.Name); n != "" {
		name = n
	}

	cal := domain.ReminderCalendar{
		Name: name,
		Days: make(map[string][]domain.Reminder, len(yc.Days)),
	}

	// Walk days in order so the first reported problem is stable.
	days := make([]string, 0, len(yc.Days))
	for day := range yc.Days {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		entries := yc.Days[day]
		key := strings.TrimSpace(day)
		if _, err := time.Parse(domain.DateLayout, key); err != nil {
			return domain.ReminderCalendar{}, invalidField(path, "days."+strconv.Quote(day), "date must be YYYY-MM-DD")
		}

		list := make([]domain.Reminder, 0, len(entries))
		for i, e := range entries {
			prefix := fmt.Sprintf("days.%s[%d]", key, i)

			if strings.TrimSpace(e.Title) == "" {
				return domain.ReminderCalendar{}, invalidField(path, prefix+".title", "title is required")
			}

			kind := domain.ReminderKind(strings.ToLower(strings.TrimSpace(e.Kind)))
			if kind == "" {
				kind = domain.ReminderGeneral
			}
			if !kind.Valid() {
				return domain.ReminderCalendar{}, invalidField(path, prefix+".kind", fmt.Sprintf("unsupported kind %q", e.Kind))
			}

			status := domain.ReminderStatus(strings.ToLower(strings.TrimSpace(e.Status)))
			if status == "" {
				status = domain.StatusPending
			}
			if !status.Valid() {
				return domain.ReminderCalendar{}, invalidField(path, prefix+".status", fmt.Sprintf("unsupported status %q", e.Status))
			}

			id := strings.TrimSpace(e.ID)
			if id == "" {
				id = fmt.Sprintf("%s-%d", key, i+1)
			}

			list = append(list, domain.Reminder{
				ID:          id,
				Title:       strings.TrimSpace(e.Title),
				Time:        strings.TrimSpace(e.Time),
				Kind:        kind,
				Status:      status,
				Description: strings.TrimSpace(e.Description),
			})
		}

		cal.Days[key] = append(cal.Days[key], list...)
	}

	return cal, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlreminders.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
