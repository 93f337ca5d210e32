package ports

import "github.com/Rajeshaligeti/hope-health/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
