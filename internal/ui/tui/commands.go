package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/infra/historystore"
	"github.com/Rajeshaligeti/hope-health/internal/infra/workspacefinder"
	"github.com/Rajeshaligeti/hope-health/internal/infra/yamlreminders"
	"github.com/Rajeshaligeti/hope-health/internal/infra/yamlvitals"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
	"github.com/Rajeshaligeti/hope-health/internal/usecase"
)

const cmdTimeout = 10 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		cfg, cfgErr := workspacefinder.LoadConfig(root)
		if cfgErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: true, root: root, cfg: domain.DefaultConfig(), err: cfgErr}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, cfg: cfg}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

// cmdEvaluate computes the BMI and saves it when a workspace is open and
// history is enabled.
func cmdEvaluate(deps Deps, root string, cfg domain.Config, m domain.Measurement, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		var store ports.HistoryStore
		if root != "" && cfg.History.Enabled {
			store = historystore.NewJSONStore(root, cfg)
		}

		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()

		uc := usecase.NewEvaluateBMI(store,
			usecase.WithLogger(log),
			usecase.WithClock(deps.now),
		)
		rec, id, err := uc.Execute(ctx, m, usecase.EvaluateOptions{Save: store != nil})
		return bmiEvaluatedMsg{rec: rec, id: id, err: err}
	}
}

func cmdLoadHistory(root string, cfg domain.Config, limit int) tea.Cmd {
	return func() tea.Msg {
		store := historystore.NewJSONStore(root, cfg)

		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()

		refs, err := usecase.NewListHistory(store).Execute(ctx, limit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		sum, err := usecase.NewSummarizeHistory(store).Execute(ctx)
		return historyLoadedMsg{refs: refs, sum: sum, err: err}
	}
}

func cmdLoadReminders(root string, cfg domain.Config, day time.Time) tea.Cmd {
	return func() tea.Msg {
		loader := yamlreminders.NewLoader(
			root,
			yamlreminders.WithRemindersDir(cfg.Paths.RemindersDir),
		)

		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()

		today, err := usecase.NewRemindersForDay(loader).Execute(ctx, cfg.Defaults.Calendar, day)
		if err != nil {
			return remindersLoadedMsg{day: day, err: err}
		}
		upcoming, err := usecase.NewUpcomingReminders(loader).Execute(ctx, cfg.Defaults.Calendar, day.AddDate(0, 0, 1), 5)
		return remindersLoadedMsg{day: day, today: today, upcoming: upcoming, err: err}
	}
}

func cmdLoadVitals(root string, cfg domain.Config) tea.Cmd {
	return func() tea.Msg {
		loader := yamlvitals.NewLoader(root, yamlvitals.WithFile(cfg.Paths.VitalsFile))

		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()

		cards, err := usecase.NewShowVitals(loader).Execute(ctx)
		return vitalsLoadedMsg{cards: cards, err: err}
	}
}
