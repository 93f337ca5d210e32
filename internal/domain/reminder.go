package domain

import (
	"sort"
	"time"
)

// DateLayout is the calendar key format.
const DateLayout = "2006-01-02"

// ReminderKind classifies a calendar entry.
type ReminderKind string

const (
	ReminderMedication  ReminderKind = "medication"
	ReminderAppointment ReminderKind = "appointment"
	ReminderGeneral     ReminderKind = "reminder"
	ReminderExercise    ReminderKind = "exercise"
)

func (k ReminderKind) Valid() bool {
	switch k {
	case ReminderMedication, ReminderAppointment, ReminderGeneral, ReminderExercise:
		return true
	}
	return false
}

// ReminderStatus tracks whether an entry was done.
type ReminderStatus string

const (
	StatusCompleted ReminderStatus = "completed"
	StatusPending   ReminderStatus = "pending"
	StatusMissed    ReminderStatus = "missed"
)

func (s ReminderStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusMissed:
		return true
	}
	return false
}

// Reminder is a single calendar entry.
type Reminder struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Time        string         `json:"time"`
	Kind        ReminderKind   `json:"kind"`
	Status      ReminderStatus `json:"status"`
	Description string         `json:"description,omitempty"`
}

// DatedReminder pairs a reminder with its calendar day.
type DatedReminder struct {
	Date string `json:"date"`
	Reminder
}

// ReminderCalendar is a static table of reminders keyed by YYYY-MM-DD.
type ReminderCalendar struct {
	Name string
	Days map[string][]Reminder
}

// CalendarRef is a lightweight reference to a calendar file on disk.
type CalendarRef struct {
	Name string
	Path string
}

// DateKey formats t as a calendar key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// On returns the reminders for day, or an empty slice.
func (c ReminderCalendar) On(day string) []Reminder {
	rs := c.Days[day]
	out := make([]Reminder, len(rs))
	copy(out, rs)
	return out
}

// Dates returns the calendar keys in ascending order.
func (c ReminderCalendar) Dates() []string {
	out := make([]string, 0, len(c.Days))
	for d := range c.Days {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
