package ports

import "github.com/Rajeshaligeti/hope-health/internal/domain"

// ReminderLoader loads reminder calendars from a source (e.g., filesystem).
type ReminderLoader interface {
	LoadCalendar(nameOrPath string) (domain.ReminderCalendar, error)
}

type ReminderCatalog interface {
	ListCalendars(root string) ([]domain.CalendarRef, error)
}
