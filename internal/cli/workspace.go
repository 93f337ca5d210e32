package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/infra/historystore"
	"github.com/Rajeshaligeti/hope-health/internal/infra/workspacefinder"
	"github.com/Rajeshaligeti/hope-health/internal/infra/yamlreminders"
	"github.com/Rajeshaligeti/hope-health/internal/infra/yamlvitals"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	store ports.HistoryStore

	reminders ports.ReminderLoader
	calendars ports.ReminderCatalog

	vitals ports.VitalsLoader
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return openWorkspace(root, cfg), nil
}

func openWorkspace(root string, cfg domain.Config) *workspaceCtx {
	remLoader := yamlreminders.NewLoader(
		root,
		yamlreminders.WithRemindersDir(cfg.Paths.RemindersDir),
	)

	return &workspaceCtx{
		root:      root,
		cfg:       cfg,
		store:     historystore.NewJSONStore(root, cfg),
		reminders: remLoader,
		calendars: remLoader,
		vitals:    yamlvitals.NewLoader(root, yamlvitals.WithFile(cfg.Paths.VitalsFile)),
	}
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `hope init`): %w", wd, err)
	}
	return root, nil
}

// resolveCalendarArg maps --calendar to a loader argument. Names go to the
// loader as-is; paths are resolved against the workspace root.
func resolveCalendarArg(ws *workspaceCtx, arg string) string {
	in := strings.TrimSpace(arg)
	if in == "" {
		return ws.cfg.Defaults.Calendar
	}

	if looksLikePath(in) || hasYAMLExt(in) {
		p := in
		if !filepath.IsAbs(p) {
			if looksLikePath(p) {
				p = filepath.Join(ws.root, p)
			} else {
				p = filepath.Join(ws.root, ws.cfg.Paths.RemindersDir, p)
			}
		}
		return filepath.Clean(p)
	}
	return in
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}
