package ports

import "github.com/Rajeshaligeti/hope-health/internal/domain"

// VitalsLoader reads the latest vital signs of a workspace.
type VitalsLoader interface {
	LoadVitals() (domain.VitalsSnapshot, error)
}
