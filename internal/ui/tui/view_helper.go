package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/usecase"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderResult(t Theme, rec domain.EvaluationRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "BMI %.1f  %s\n", rec.Result.BMI, t.Category(rec.Result.Category))
	b.WriteString(t.Subtitle.Render("Range " + rec.Result.Category.Range()))
	b.WriteString("\n")
	b.WriteString(rec.Result.RiskDescription)
	b.WriteString("\n\n")
	b.WriteString(renderScale(rec.Result.Category))

	return b.String()
}

// renderScale marks the active band on a one-line scale.
func renderScale(active domain.Category) string {
	parts := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		label := c.Label()
		if c == active {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " · ")
}

func renderHistory(refs []domain.HistoryRef, sum domain.HistorySummary) string {
	if len(refs) == 0 {
		return "(no saved evaluations)\n\nUse the BMI Calculator to add one."
	}

	var b strings.Builder
	if sum.Count > 0 {
		fmt.Fprintf(&b, "%d evaluations, BMI %.1f - %.1f\n\n", sum.Count, sum.MinBMI, sum.MaxBMI)
	}
	for _, r := range refs {
		fmt.Fprintf(&b, "%s  %5.1f  %s\n",
			r.EvaluatedAt.Local().Format(time.DateTime),
			r.BMI,
			clampString(r.Category.Label(), 13),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderReminders(t Theme, today []domain.Reminder, upcoming []domain.DatedReminder) string {
	var b strings.Builder

	if len(today) == 0 {
		b.WriteString("(no reminders for this day)\n")
	}
	for _, r := range today {
		b.WriteString(renderReminder(r))
		b.WriteString("\n")
	}

	if len(upcoming) > 0 {
		b.WriteString("\n")
		b.WriteString(t.Subtitle.Render("Coming up"))
		b.WriteString("\n")
		for _, r := range upcoming {
			fmt.Fprintf(&b, "%s  %s\n", r.Date, renderReminder(r.Reminder))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderReminder(r domain.Reminder) string {
	mark := "○"
	switch r.Status {
	case domain.StatusCompleted:
		mark = "✓"
	case domain.StatusMissed:
		mark = "✗"
	}

	line := fmt.Sprintf("%s %-8s %s (%s)", mark, r.Time, clampString(r.Title, 40), r.Kind)
	if r.Description != "" {
		line += "\n    " + clampString(r.Description, 60)
	}
	return line
}

func renderVitals(t Theme, cards []usecase.VitalCard) string {
	if len(cards) == 0 {
		return "(no vitals recorded)"
	}

	var b strings.Builder
	for _, c := range cards {
		fmt.Fprintf(&b, "%-15s %9s %-6s %s  %s", c.Title, c.Value, c.Unit, c.Trend.Arrow(), t.VitalStatus(c.Status))
		if c.Progress != nil {
			fmt.Fprintf(&b, "\n%-15s %s %.0f%% of %g", "", progressBar(*c.Progress, 20), *c.Progress, c.Goal)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// progressBar draws pct (0-100, clamped) as a fixed-width bar.
func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + "]"
}
