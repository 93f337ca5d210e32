package usecase

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

// memStore is an in-memory HistoryStore.
type memStore struct {
	records map[string]domain.EvaluationRecord
	order   []string
	saveErr error
	loadErr error
}

func newMemStore() *memStore {
	return &memStore{records: map[string]domain.EvaluationRecord{}}
}

func (s *memStore) Save(rec domain.EvaluationRecord) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	id := fmt.Sprintf("rec-%d", len(s.order)+1)
	if rec.ID == "" {
		rec.ID = "uuid-" + id
	}
	s.records[id] = rec
	s.order = append(s.order, id)
	return id, nil
}

func (s *memStore) List() ([]domain.HistoryRef, error) {
	out := make([]domain.HistoryRef, 0, len(s.order))
	for _, id := range s.order {
		r := s.records[id]
		out = append(out, domain.HistoryRef{
			ID:          id,
			EvaluatedAt: r.EvaluatedAt,
			BMI:         r.Result.BMI,
			Category:    r.Result.Category,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EvaluatedAt.After(out[j].EvaluatedAt) })
	return out, nil
}

func (s *memStore) Load(id string) (domain.EvaluationRecord, error) {
	if s.loadErr != nil {
		return domain.EvaluationRecord{}, s.loadErr
	}
	r, ok := s.records[id]
	if !ok {
		return domain.EvaluationRecord{}, &domain.OpError{Op: "memstore.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return r, nil
}

func (s *memStore) LoadRaw(id string) ([]byte, error) {
	r, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	return json.Marshal(r)
}

type fakeReminderLoader struct {
	cal domain.ReminderCalendar
	err error
}

func (f fakeReminderLoader) LoadCalendar(_ string) (domain.ReminderCalendar, error) {
	return f.cal, f.err
}

type fakeCatalog struct {
	refs []domain.CalendarRef
}

func (f fakeCatalog) ListCalendars(_ string) ([]domain.CalendarRef, error) {
	return f.refs, nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}

type fakeVitalsLoader struct {
	snap domain.VitalsSnapshot
	err  error
}

func (f fakeVitalsLoader) LoadVitals() (domain.VitalsSnapshot, error) {
	return f.snap, f.err
}
