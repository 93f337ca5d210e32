package ports

import "github.com/Rajeshaligeti/hope-health/internal/domain"

// HistoryStore persists saved BMI evaluations.
type HistoryStore interface {
	Save(rec domain.EvaluationRecord) (id string, err error)
	List() ([]domain.HistoryRef, error)
	Load(id string) (domain.EvaluationRecord, error)
	// LoadRaw returns the stored bytes for field queries.
	LoadRaw(id string) ([]byte, error)
}
