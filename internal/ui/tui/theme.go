package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style
	Error    lipgloss.Style

	categories map[domain.Category]lipgloss.Style
	statuses   map[domain.VitalStatus]lipgloss.Style
}

func DefaultTheme() Theme {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		categories: map[domain.Category]lipgloss.Style{
			domain.Underweight: badge.Foreground(lipgloss.Color("39")),
			domain.Normal:      badge.Foreground(lipgloss.Color("42")),
			domain.Overweight:  badge.Foreground(lipgloss.Color("214")),
			domain.Obese:       badge.Foreground(lipgloss.Color("203")),
		},
		statuses: map[domain.VitalStatus]lipgloss.Style{
			domain.VitalExcellent: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			domain.VitalGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			domain.VitalWarning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			domain.VitalCritical:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}

// Category renders a category label in its band color.
func (t Theme) Category(c domain.Category) string {
	if s, ok := t.categories[c]; ok {
		return s.Render(c.Label())
	}
	return c.Label()
}

func (t Theme) VitalStatus(s domain.VitalStatus) string {
	if st, ok := t.statuses[s]; ok {
		return st.Render(string(s))
	}
	return string(s)
}
