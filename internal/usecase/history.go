package usecase

import (
	"context"
	"math"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
	ucextract "github.com/Rajeshaligeti/hope-health/internal/usecase/extract"
)

type ListHistory struct {
	store ports.HistoryStore
}

func NewListHistory(store ports.HistoryStore) *ListHistory {
	return &ListHistory{store: store}
}

// Execute returns saved evaluations newest first. limit <= 0 returns all.
func (uc *ListHistory) Execute(ctx context.Context, limit int) ([]domain.HistoryRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	refs, err := uc.store.List()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(refs) > limit {
		refs = refs[:limit]
	}
	return refs, nil
}

// HistoryEntry is a loaded record plus any requested field lookups.
type HistoryEntry struct {
	ID     string
	Record domain.EvaluationRecord
	Fields []domain.FieldValue
}

type ShowHistory struct {
	store ports.HistoryStore
}

func NewShowHistory(store ports.HistoryStore) *ShowHistory {
	return &ShowHistory{store: store}
}

// Execute loads one record. Each JSONPath in fields is evaluated against the
// stored document; lookups that fail are reported per field.
func (uc *ShowHistory) Execute(ctx context.Context, id string, fields []string) (HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return HistoryEntry{}, err
	}

	raw, err := uc.store.LoadRaw(id)
	if err != nil {
		return HistoryEntry{}, err
	}
	rec, err := uc.store.Load(id)
	if err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		ID:     id,
		Record: rec,
		Fields: ucextract.Fields(raw, fields),
	}, nil
}

type SummarizeHistory struct {
	store ports.HistoryStore
}

func NewSummarizeHistory(store ports.HistoryStore) *SummarizeHistory {
	return &SummarizeHistory{store: store}
}

// Execute aggregates every saved record. An empty history yields Count 0
// and a nil Latest.
func (uc *SummarizeHistory) Execute(ctx context.Context) (domain.HistorySummary, error) {
	sum := domain.HistorySummary{ByCategory: map[domain.Category]int{}}

	if err := ctx.Err(); err != nil {
		return sum, err
	}

	refs, err := uc.store.List()
	if err != nil {
		return sum, err
	}
	if len(refs) == 0 {
		return sum, nil
	}

	sum.MinBMI = math.Inf(1)
	sum.MaxBMI = math.Inf(-1)
	for _, r := range refs {
		sum.Count++
		sum.ByCategory[r.Category]++
		sum.MinBMI = math.Min(sum.MinBMI, r.BMI)
		sum.MaxBMI = math.Max(sum.MaxBMI, r.BMI)
	}

	// refs are newest first.
	latest, err := uc.store.Load(refs[0].ID)
	if err != nil {
		return sum, err
	}
	sum.Latest = &latest
	return sum, nil
}
