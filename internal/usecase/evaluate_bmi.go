package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
)

// EvaluateOptions controls what happens after the BMI is computed.
type EvaluateOptions struct {
	Save bool
	Note string
}

type EvaluateBMI struct {
	store ports.HistoryStore
	log   *slog.Logger
	now   func() time.Time
}

type EvaluateOption func(*EvaluateBMI)

func WithLogger(l *slog.Logger) EvaluateOption {
	return func(uc *EvaluateBMI) {
		if l != nil {
			uc.log = l
		}
	}
}

func WithClock(now func() time.Time) EvaluateOption {
	return func(uc *EvaluateBMI) { uc.now = now }
}

// NewEvaluateBMI builds the use case. store may be nil, in which case
// nothing is ever saved.
func NewEvaluateBMI(store ports.HistoryStore, opts ...EvaluateOption) *EvaluateBMI {
	uc := &EvaluateBMI{
		store: store,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute evaluates m and, when requested, saves the record.
// The returned id is empty when nothing was saved. A failed save still
// returns the computed record alongside the error.
func (uc *EvaluateBMI) Execute(ctx context.Context, m domain.Measurement, opts EvaluateOptions) (domain.EvaluationRecord, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.EvaluationRecord{}, "", err
	}

	res, err := m.Evaluate()
	if err != nil {
		var ie *domain.InvalidInputError
		if errors.As(err, &ie) {
			uc.log.Warn("bmi.invalid_input", "field", ie.Field, "reason", ie.Reason, "units", string(m.Units))
		}
		return domain.EvaluationRecord{}, "", err
	}

	rec := domain.EvaluationRecord{
		Measurement: m,
		Result:      res,
		EvaluatedAt: uc.now().UTC(),
		Note:        strings.TrimSpace(opts.Note),
	}

	uc.log.Info("bmi.evaluated",
		"units", string(m.Units),
		"bmi", res.BMI,
		"category", string(res.Category),
	)

	if !opts.Save || uc.store == nil {
		return rec, "", nil
	}

	id, err := uc.store.Save(rec)
	if err != nil {
		uc.log.Error("history.save_failed", "error", err.Error())
		return rec, "", err
	}

	// The store assigns the record id; read it back so callers see it.
	saved, err := uc.store.Load(id)
	if err != nil {
		uc.log.Warn("history.reload_failed", "id", id, "error", err.Error())
		return rec, id, nil
	}
	rec = saved

	uc.log.Info("history.saved", "id", id, "record_id", rec.ID)
	return rec, id, nil
}
