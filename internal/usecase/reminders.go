package usecase

import (
	"context"
	"time"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
)

type RemindersForDay struct {
	loader ports.ReminderLoader
}

func NewRemindersForDay(loader ports.ReminderLoader) *RemindersForDay {
	return &RemindersForDay{loader: loader}
}

// Execute returns the reminders of calendar on date. A date without
// entries yields an empty slice.
func (uc *RemindersForDay) Execute(ctx context.Context, calendar string, date time.Time) ([]domain.Reminder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cal, err := uc.loader.LoadCalendar(calendar)
	if err != nil {
		return nil, err
	}
	return cal.On(domain.DateKey(date)), nil
}

type UpcomingReminders struct {
	loader ports.ReminderLoader
}

func NewUpcomingReminders(loader ports.ReminderLoader) *UpcomingReminders {
	return &UpcomingReminders{loader: loader}
}

// Execute returns pending reminders dated on or after from, ordered by date
// and then by their position in the calendar. limit <= 0 returns all.
func (uc *UpcomingReminders) Execute(ctx context.Context, calendar string, from time.Time, limit int) ([]domain.DatedReminder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cal, err := uc.loader.LoadCalendar(calendar)
	if err != nil {
		return nil, err
	}

	start := domain.DateKey(from)
	out := []domain.DatedReminder{}
	for _, day := range cal.Dates() {
		// Keys are YYYY-MM-DD, so lexical order is chronological.
		if day < start {
			continue
		}
		for _, r := range cal.Days[day] {
			if r.Status != domain.StatusPending {
				continue
			}
			out = append(out, domain.DatedReminder{Date: day, Reminder: r})
			if limit > 0 && len(out) == limit {
				return out, nil
			}
		}
	}
	return out, nil
}

type ListCalendars struct {
	catalog ports.ReminderCatalog
}

func NewListCalendars(catalog ports.ReminderCatalog) *ListCalendars {
	return &ListCalendars{catalog: catalog}
}

func (uc *ListCalendars) Execute(ctx context.Context, root string) ([]domain.CalendarRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return uc.catalog.ListCalendars(root)
}
