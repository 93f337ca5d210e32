package tui

import (
	"time"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/usecase"
)

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	cfg   domain.Config
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type bmiEvaluatedMsg struct {
	rec domain.EvaluationRecord
	id  string
	err error
}

type historyLoadedMsg struct {
	refs []domain.HistoryRef
	sum  domain.HistorySummary
	err  error
}

type remindersLoadedMsg struct {
	day      time.Time
	today    []domain.Reminder
	upcoming []domain.DatedReminder
	err      error
}

type vitalsLoadedMsg struct {
	cards []usecase.VitalCard
	err   error
}
