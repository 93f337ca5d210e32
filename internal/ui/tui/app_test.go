package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/infra/fsworkspace"
)

func testModel() model {
	return newModel(Deps{Now: func() time.Time { return time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC) }})
}

func TestBMIForm_EnterEvaluatesWithoutWorkspace(t *testing.T) {
	m := testModel()
	m.scr = screenBMI
	m.form.inputs[fieldWeight].SetValue("70")
	m.form.inputs[fieldHeight].SetValue("175")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if !m.form.busy || cmd == nil {
		t.Fatalf("expected evaluation command, busy=%v", m.form.busy)
	}

	msg, ok := cmd().(bmiEvaluatedMsg)
	if !ok {
		t.Fatalf("expected bmiEvaluatedMsg")
	}
	if msg.id != "" {
		t.Fatalf("expected nothing saved without workspace, got id %q", msg.id)
	}

	next, _ = m.Update(msg)
	m = next.(model)
	if m.form.busy || m.form.result == nil {
		t.Fatalf("expected result, got busy=%v result=%v", m.form.busy, m.form.result)
	}
	if m.form.result.Result.BMI != 22.9 || m.form.result.Result.Category != domain.Normal {
		t.Fatalf("unexpected result: %+v", m.form.result.Result)
	}
	if !strings.Contains(m.View(), "22.9") {
		t.Fatalf("expected view to show BMI")
	}
}

func TestBMIForm_InvalidInputShowsError(t *testing.T) {
	m := testModel()
	m.scr = screenBMI
	m.form.inputs[fieldWeight].SetValue("abc")
	m.form.inputs[fieldHeight].SetValue("175")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if cmd != nil {
		t.Fatalf("expected no command for unparsable input")
	}
	if !errors.Is(m.form.err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", m.form.err)
	}
	if !strings.Contains(m.View(), "Invalid weight") {
		t.Fatalf("expected error in view:\n%s", m.View())
	}
}

func TestBMIForm_ToggleUnitsAndReset(t *testing.T) {
	m := testModel()
	m.scr = screenBMI

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = next.(model)
	if m.form.units != domain.Imperial {
		t.Fatalf("expected imperial after toggle, got %s", m.form.units)
	}
	if !strings.Contains(m.form.inputs[fieldWeight].Prompt, "lbs") {
		t.Fatalf("expected lbs prompt, got %q", m.form.inputs[fieldWeight].Prompt)
	}

	m.form.inputs[fieldWeight].SetValue("150")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(model)
	if m.form.inputs[fieldWeight].Value() != "" {
		t.Fatalf("expected reset to clear inputs")
	}
}

func TestBMIForm_TabMovesFocus(t *testing.T) {
	m := testModel()
	m.scr = screenBMI

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	if m.form.focus != fieldHeight {
		t.Fatalf("expected focus on height, got %d", m.form.focus)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	if m.form.focus != fieldWeight {
		t.Fatalf("expected focus to wrap to weight, got %d", m.form.focus)
	}
}

func TestRemindersScreen_ChangesDay(t *testing.T) {
	m := testModel()
	m.scr = screenReminders

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(model)
	if domain.DateKey(m.remindersDay) != "2024-01-17" {
		t.Fatalf("expected next day, got %s", domain.DateKey(m.remindersDay))
	}

	// A stale load for another day is ignored.
	next, _ = m.Update(remindersLoadedMsg{day: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), err: errors.New("stale")})
	m = next.(model)
	if m.reminders.err != nil {
		t.Fatalf("expected stale message ignored")
	}
}

func TestSafeModel_RecoversPanic(t *testing.T) {
	s := wrapSafe(testModel(), nil)
	s.m.scr = screenBMI
	s.m.form.focus = fieldCount + 3

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")})
	sm := next.(safeModel)
	if cmd != nil || sm.m.scr != screenHome || sm.m.toast == "" {
		t.Fatalf("expected recovery to home with toast, got scr=%v toast=%q", sm.m.scr, sm.m.toast)
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&domain.InvalidInputError{Field: "height", Reason: "must be greater than zero"}, "Invalid height: must be greater than zero"},
		{&domain.OpError{Op: "yamlreminders.load", Kind: domain.KindNotFound}, "Reminder calendar not found"},
		{&domain.OpError{Op: "workspacefinder.loadconfig", Kind: domain.KindInvalidConfig, Path: "/ws/hope.yaml", Err: errors.New("yaml: line 3: did not find expected key")}, "Invalid YAML at hope.yaml line 3"},
		{errors.New("boom"), "Unexpected error (see logs)"},
		{&domain.OpError{Op: "historystore.save", Kind: domain.KindExecution, Err: errors.New("disk full")}, "Could not access workspace files (see logs)"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Errorf("userMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestRenderScale_MarksActiveBand(t *testing.T) {
	got := renderScale(domain.Overweight)
	if !strings.Contains(got, "[Overweight]") || strings.Contains(got, "[Normal weight]") {
		t.Fatalf("unexpected scale: %s", got)
	}
}

func TestDebugModeShowsRawError(t *testing.T) {
	cause := &domain.OpError{Op: "historystore.list", Kind: domain.KindExecution, Err: errors.New("permission denied")}

	quiet := testModel()
	next, _ := quiet.Update(workspaceRefreshedMsg{found: true, root: "/ws", cfg: domain.DefaultConfig(), err: cause})
	quiet = next.(model)
	if strings.Contains(quiet.toast, "permission denied") {
		t.Fatalf("expected friendly toast only, got %q", quiet.toast)
	}

	debug := newModel(Deps{Debug: true})
	next, _ = debug.Update(workspaceRefreshedMsg{found: true, root: "/ws", cfg: domain.DefaultConfig(), err: cause})
	debug = next.(model)
	if !strings.Contains(debug.toast, "Could not access workspace files") || !strings.Contains(debug.toast, "permission denied") {
		t.Fatalf("expected raw error in debug toast, got %q", debug.toast)
	}
}

func TestVitalsScreen_LoadsWorkspaceVitals(t *testing.T) {
	root := t.TempDir()
	if err := fsworkspace.NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("init: %v", err)
	}

	m := testModel()
	m.workspaceFound = true
	m.workspaceRoot = root
	m.scr = screenVitals

	next, cmd := m.loadVitals()
	m = next.(model)
	if !m.vitalsLoading || cmd == nil {
		t.Fatalf("expected load command")
	}
	next, _ = m.Update(cmd())
	m = next.(model)

	if m.vitals.err != nil {
		t.Fatalf("unexpected error: %v", m.vitals.err)
	}
	view := m.View()
	for _, want := range []string{"Heart Rate", "120/80", "85% of 10000", "excellent"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in vitals view:\n%s", want, view)
		}
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(model).scr != screenHome {
		t.Fatalf("expected esc to return home")
	}
}

func TestVitalsScreen_MissingFile(t *testing.T) {
	m := testModel()
	m.workspaceFound = true
	m.workspaceRoot = t.TempDir()
	m.scr = screenVitals

	_, cmd := m.loadVitals()
	next, _ := m.Update(cmd())
	m = next.(model)
	if !strings.Contains(m.View(), "Vitals file not found") {
		t.Fatalf("expected not found message, got:\n%s", m.View())
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	if got := progressBar(150, 4); got != "[████]" {
		t.Fatalf("unexpected bar %q", got)
	}
	if got := progressBar(50, 4); got != "[██··]" {
		t.Fatalf("unexpected bar %q", got)
	}
}
