package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenBMI
	screenHistory
	screenReminders
	screenVitals
)

const (
	menuBMI       = "BMI Calculator"
	menuHistory   = "History"
	menuReminders = "Reminders"
	menuVitals    = "Vitals"
	menuQuit      = "Quit"

	historyLimit = 15
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	workspaceFound bool
	workspaceRoot  string
	cfg            domain.Config

	form bmiForm

	historyLoading bool
	history        historyLoadedMsg

	remindersDay     time.Time
	remindersLoading bool
	reminders        remindersLoadedMsg

	vitalsLoading bool
	vitals        vitalsLoadedMsg

	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{menuBMI, "Compute BMI and its risk category"},
		menuItem{menuHistory, "Saved evaluations in this workspace"},
		menuItem{menuReminders, "Medication, exercise and appointment reminders"},
		menuItem{menuVitals, "Heart rate, blood pressure, steps and sleep"},
		menuItem{menuQuit, "Exit HOPE"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "HOPE"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	cfg := domain.DefaultConfig()
	return model{
		theme:        t,
		deps:         deps,
		scr:          screenHome,
		menu:         l,
		cfg:          cfg,
		form:         newBMIForm(cfg.Defaults.Units),
		remindersDay: deps.now(),
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.found {
			m.cfg = msg.cfg
			if m.form.result == nil && m.form.units != m.cfg.Defaults.Units {
				m.form.units = m.cfg.Defaults.Units
				m.form.applyUnits()
			}
		}
		if msg.found && msg.err != nil {
			m.toast = m.errorText(msg.err)
		}
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = m.errorText(msg.err)
			return m, nil
		}
		m.toast = "Workspace created at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case bmiEvaluatedMsg:
		m.form.busy = false
		m.form.err = msg.err
		if msg.rec.Result.Category != "" {
			rec := msg.rec
			m.form.result = &rec
			m.form.savedID = msg.id
		} else {
			m.form.result = nil
			m.form.savedID = ""
		}
		return m, nil

	case historyLoadedMsg:
		m.historyLoading = false
		m.history = msg
		return m, nil

	case remindersLoadedMsg:
		if domain.DateKey(msg.day) != domain.DateKey(m.remindersDay) {
			return m, nil
		}
		m.remindersLoading = false
		m.reminders = msg
		return m, nil

	case vitalsLoadedMsg:
		m.vitalsLoading = false
		m.vitals = msg
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenBMI:
			return m.updateBMI(msg)
		case screenHistory, screenReminders, screenVitals:
			return m.updateBrowse(msg)
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	if m.scr == screenBMI {
		return m, m.form.updateInputs(msg)
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "i":
		if !m.workspaceFound {
			wd, err := os.Getwd()
			if err != nil {
				m.toast = m.errorText(err)
				return m, nil
			}
			return m, cmdInitWorkspaceHere(m.deps, wd)
		}

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.toast = ""
		switch it.title {
		case menuQuit:
			return m, tea.Quit
		case menuBMI:
			m.scr = screenBMI
			return m, m.form.setFocus(m.form.focus)
		case menuHistory:
			m.scr = screenHistory
			return m.loadHistory()
		case menuReminders:
			m.scr = screenReminders
			return m.loadReminders()
		case menuVitals:
			m.scr = screenVitals
			return m.loadVitals()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateBMI(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scr = screenHome
		return m, nil

	case "tab", "down":
		return m, m.form.setFocus(m.form.focus + 1)

	case "shift+tab", "up":
		return m, m.form.setFocus(m.form.focus - 1)

	case "ctrl+t":
		m.form.toggleUnits()
		return m, nil

	case "ctrl+r":
		return m, m.form.reset()

	case "enter":
		if m.form.busy {
			return m, nil
		}
		meas, err := m.form.measurement()
		if err != nil {
			m.form.err = err
			m.form.result = nil
			m.form.savedID = ""
			return m, nil
		}
		m.form.busy = true
		root := ""
		if m.workspaceFound {
			root = m.workspaceRoot
		}
		return m, cmdEvaluate(m.deps, root, m.cfg, meas, m.deps.Logger)
	}

	return m, m.form.updateInputs(msg)
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "b":
		m.scr = screenHome
		return m, nil

	case "r":
		switch m.scr {
		case screenHistory:
			return m.loadHistory()
		case screenVitals:
			return m.loadVitals()
		}
		return m.loadReminders()

	case "left", "h":
		if m.scr == screenReminders {
			m.remindersDay = m.remindersDay.AddDate(0, 0, -1)
			return m.loadReminders()
		}

	case "right", "l":
		if m.scr == screenReminders {
			m.remindersDay = m.remindersDay.AddDate(0, 0, 1)
			return m.loadReminders()
		}

	case "t":
		if m.scr == screenReminders {
			m.remindersDay = m.deps.now()
			return m.loadReminders()
		}
	}
	return m, nil
}

func (m model) loadHistory() (tea.Model, tea.Cmd) {
	if !m.workspaceFound {
		return m, nil
	}
	m.historyLoading = true
	return m, cmdLoadHistory(m.workspaceRoot, m.cfg, historyLimit)
}

func (m model) loadReminders() (tea.Model, tea.Cmd) {
	if !m.workspaceFound {
		return m, nil
	}
	m.remindersLoading = true
	return m, cmdLoadReminders(m.workspaceRoot, m.cfg, m.remindersDay)
}

func (m model) loadVitals() (tea.Model, tea.Cmd) {
	if !m.workspaceFound {
		return m, nil
	}
	m.vitalsLoading = true
	return m, cmdLoadVitals(m.workspaceRoot, m.cfg)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("HOPE") + "\n" +
		m.theme.Subtitle.Render("Health companion: BMI, history, reminders and vitals") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", shortPath(m.workspaceRoot)))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"No workspace found. Evaluations will not be saved.\n\nPress i on the menu to create one here.",
		)
	}

	var toast string
	if strings.TrimSpace(m.toast) != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	var body string
	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • i init workspace • q quit")
		body = m.theme.Card.Render(m.menu.View()) + "\n" + help

	case screenBMI:
		body = m.viewBMI()

	case screenHistory:
		body = m.viewHistory()

	case screenReminders:
		body = m.viewReminders()

	case screenVitals:
		body = m.viewVitals()

	default:
		body = "unknown state"
	}

	return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + body)
}

func (m model) viewBMI() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(menuBMI))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Units: " + string(m.form.units)))
	b.WriteString("\n\n")
	for i := range m.form.inputs {
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}

	switch {
	case m.form.busy:
		b.WriteString("\nCalculating…\n")
	case m.form.result != nil:
		b.WriteString("\n")
		b.WriteString(renderResult(m.theme, *m.form.result))
		if m.form.savedID != "" {
			b.WriteString("\n")
			b.WriteString(m.theme.Help.Render("Saved as " + m.form.savedID))
		}
		if m.form.err != nil {
			b.WriteString("\n")
			b.WriteString(m.theme.Error.Render("Not saved: " + m.errorText(m.form.err)))
		}
		b.WriteString("\n")
	case m.form.err != nil:
		b.WriteString("\n")
		b.WriteString(m.theme.Error.Render(m.errorText(m.form.err)))
		b.WriteString("\n")
	}

	help := m.theme.Help.Render("tab switch field • ctrl+t toggle units • enter calculate • ctrl+r reset • esc back")
	return m.theme.Card.Render(b.String()) + "\n" + help
}

func (m model) viewHistory() string {
	var content string
	switch {
	case !m.workspaceFound:
		content = "History needs a workspace."
	case m.historyLoading:
		content = "Loading…"
	case m.history.err != nil:
		content = m.theme.Error.Render(m.errorText(m.history.err))
	default:
		content = renderHistory(m.history.refs, m.history.sum)
	}

	card := m.theme.Card.Render(m.theme.Title.Render(menuHistory) + "\n\n" + content)
	return card + "\n" + m.theme.Help.Render("r reload • esc/b back")
}

func (m model) viewReminders() string {
	title := m.theme.Title.Render(menuReminders) + "  " +
		m.theme.Subtitle.Render(m.remindersDay.Format("Mon, 02 Jan 2006"))

	var content string
	switch {
	case !m.workspaceFound:
		content = "Reminders need a workspace."
	case m.remindersLoading:
		content = "Loading…"
	case m.reminders.err != nil:
		content = m.theme.Error.Render(m.errorText(m.reminders.err))
	default:
		content = renderReminders(m.theme, m.reminders.today, m.reminders.upcoming)
	}

	card := m.theme.Card.Render(title + "\n\n" + content)
	return card + "\n" + m.theme.Help.Render("←/→ change day • t today • r reload • esc/b back")
}

func (m model) viewVitals() string {
	var content string
	switch {
	case !m.workspaceFound:
		content = "Vitals need a workspace."
	case m.vitalsLoading:
		content = "Loading…"
	case m.vitals.err != nil:
		content = m.theme.Error.Render(m.errorText(m.vitals.err))
	default:
		content = renderVitals(m.theme, m.vitals.cards)
	}

	card := m.theme.Card.Render(m.theme.Title.Render(menuVitals) + "\n\n" + content)
	return card + "\n" + m.theme.Help.Render("r reload • esc/b back")
}

func shortPath(p string) string {
	if home, err := os.UserHomeDir(); err == nil {
		if rel, err := filepath.Rel(home, p); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.Join("~", rel)
		}
	}
	return p
}
