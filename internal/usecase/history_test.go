package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

func seedHistory(t *testing.T) *memStore {
	t.Helper()
	store := newMemStore()
	inputs := []domain.Measurement{
		{Weight: 50, Height: 175, Units: domain.Metric},  // 16.3 Underweight
		{Weight: 70, Height: 175, Units: domain.Metric},  // 22.9 Normal
		{Weight: 100, Height: 175, Units: domain.Metric}, // 32.7 Obese
	}
	for i, m := range inputs {
		at := fixedNow.Add(time.Duration(i) * time.Hour)
		uc := NewEvaluateBMI(store, WithClock(func() time.Time { return at }))
		if _, _, err := uc.Execute(context.Background(), m, EvaluateOptions{Save: true}); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
	return store
}

func TestListHistory_NewestFirstWithLimit(t *testing.T) {
	store := seedHistory(t)

	refs, err := NewListHistory(store).Execute(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0].ID != "rec-3" || refs[1].ID != "rec-2" {
		t.Fatalf("expected newest first, got %s, %s", refs[0].ID, refs[1].ID)
	}

	all, _ := NewListHistory(store).Execute(context.Background(), 0)
	if len(all) != 3 {
		t.Fatalf("expected all 3 refs, got %d", len(all))
	}
}

func TestShowHistory_ExtractsFields(t *testing.T) {
	store := seedHistory(t)

	entry, err := NewShowHistory(store).Execute(context.Background(), "rec-2", []string{"$.result.category", "$.nope"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Record.Result.Category != domain.Normal {
		t.Fatalf("unexpected record: %+v", entry.Record)
	}
	if len(entry.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(entry.Fields))
	}
	if !entry.Fields[0].Found || entry.Fields[0].Value != "Normal" {
		t.Fatalf("unexpected category field: %+v", entry.Fields[0])
	}
	if entry.Fields[1].Found {
		t.Fatalf("expected missing field to fail: %+v", entry.Fields[1])
	}
}

func TestShowHistory_NotFound(t *testing.T) {
	_, err := NewShowHistory(newMemStore()).Execute(context.Background(), "missing", nil)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestSummarizeHistory(t *testing.T) {
	store := seedHistory(t)

	sum, err := NewSummarizeHistory(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Count != 3 {
		t.Fatalf("expected count 3, got %d", sum.Count)
	}
	if sum.ByCategory[domain.Underweight] != 1 || sum.ByCategory[domain.Normal] != 1 || sum.ByCategory[domain.Obese] != 1 {
		t.Fatalf("unexpected breakdown: %v", sum.ByCategory)
	}
	if sum.MinBMI != 16.3 || sum.MaxBMI != 32.7 {
		t.Fatalf("unexpected min/max: %v/%v", sum.MinBMI, sum.MaxBMI)
	}
	if sum.Latest == nil || sum.Latest.Result.Category != domain.Obese {
		t.Fatalf("expected latest to be the obese record, got %+v", sum.Latest)
	}
}

func TestSummarizeHistory_Empty(t *testing.T) {
	sum, err := NewSummarizeHistory(newMemStore()).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Count != 0 || sum.Latest != nil {
		t.Fatalf("expected empty summary, got %+v", sum)
	}
}
