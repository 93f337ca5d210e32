package tui

import (
	"log/slog"
	"time"

	"github.com/Rajeshaligeti/hope-health/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool

	// Now defaults to time.Now; the reminders screen starts on its day.
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
