package yamlvitals

import (
	"fmt"
	"strings"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

func mapVitals(path string, yv yamlVitals) (domain.VitalsSnapshot, error) {
	snap := domain.VitalsSnapshot{Vitals: make([]domain.Vital, 0, len(yv.Vitals))}
	seen := map[domain.VitalKind]bool{}

	for i, e := range yv.Vitals {
		prefix := fmt.Sprintf("vitals[%d]", i)

		kind := domain.VitalKind(strings.ToLower(strings.TrimSpace(e.Kind)))
		if !kind.Valid() {
			return domain.VitalsSnapshot{}, invalidField(path, prefix+".kind", fmt.Sprintf("unsupported kind %q", e.Kind))
		}
		if seen[kind] {
			return domain.VitalsSnapshot{}, invalidField(path, prefix+".kind", fmt.Sprintf("duplicate kind %q", kind))
		}
		seen[kind] = true

		status := domain.VitalStatus(strings.ToLower(strings.TrimSpace(e.Status)))
		if status == "" {
			status = domain.VitalGood
		}
		if !status.Valid() {
			return domain.VitalsSnapshot{}, invalidField(path, prefix+".status", fmt.Sprintf("unsupported status %q", e.Status))
		}

		if e.Goal < 0 {
			return domain.VitalsSnapshot{}, invalidField(path, prefix+".goal", "must not be negative")
		}

		bp := kind == domain.VitalBloodPressure
		readings := make([]domain.VitalReading, 0, len(e.Readings))
		for j, r := range e.Readings {
			rp := fmt.Sprintf("%s.readings[%d]", prefix, j)
			if r.Value < 0 {
				return domain.VitalsSnapshot{}, invalidField(path, rp+".value", "must not be negative")
			}
			if bp && r.Secondary == nil {
				return domain.VitalsSnapshot{}, invalidField(path, rp+".secondary", "blood pressure needs a diastolic value")
			}
			reading := domain.VitalReading{Label: strings.TrimSpace(r.Label), Value: r.Value}
			if r.Secondary != nil {
				reading.Secondary = *r.Secondary
			}
			readings = append(readings, reading)
		}

		v := domain.Vital{
			Kind:     kind,
			Title:    strings.TrimSpace(e.Title),
			Unit:     strings.TrimSpace(e.Unit),
			Status:   status,
			Goal:     e.Goal,
			Readings: readings,
		}
		if v.Title == "" {
			v.Title = kind.Title()
		}
		if v.Unit == "" {
			v.Unit = kind.Unit()
		}

		// Without an explicit current value the latest reading stands in.
		switch {
		case e.Current != nil:
			v.Current = *e.Current
			if e.Secondary != nil {
				v.CurrentSecondary = *e.Secondary
			} else if bp {
				return domain.VitalsSnapshot{}, invalidField(path, prefix+".secondary", "blood pressure needs a diastolic value")
			}
		case len(readings) > 0:
			last := readings[len(readings)-1]
			v.Current, v.CurrentSecondary = last.Value, last.Secondary
		default:
			return domain.VitalsSnapshot{}, invalidField(path, prefix+".current", "current is required when there are no readings")
		}
		if v.Current < 0 || v.CurrentSecondary < 0 {
			return domain.VitalsSnapshot{}, invalidField(path, prefix+".current", "must not be negative")
		}

		snap.Vitals = append(snap.Vitals, v)
	}

	return snap, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlvitals.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
