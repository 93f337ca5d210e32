package domain

import (
	"errors"
	"testing"
)

func TestParseVitalKind(t *testing.T) {
	cases := map[string]VitalKind{
		"heart_rate":      VitalHeartRate,
		"Heart-Rate":      VitalHeartRate,
		" blood pressure": VitalBloodPressure,
		"STEPS":           VitalSteps,
		"sleep":           VitalSleep,
	}
	for in, want := range cases {
		got, err := ParseVitalKind(in)
		if err != nil || got != want {
			t.Errorf("ParseVitalKind(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseVitalKind("glucose"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestVital_Display(t *testing.T) {
	bp := Vital{Kind: VitalBloodPressure, Current: 120, CurrentSecondary: 80}
	if got := bp.Display(); got != "120/80" {
		t.Fatalf("expected 120/80, got %q", got)
	}
	sleep := Vital{Kind: VitalSleep, Current: 7.2}
	if got := sleep.Display(); got != "7.2" {
		t.Fatalf("expected 7.2, got %q", got)
	}
}

func TestVital_Progress(t *testing.T) {
	steps := Vital{Kind: VitalSteps, Current: 8500, Goal: 10000}
	if pct, ok := steps.Progress(); !ok || pct != 85 {
		t.Fatalf("expected 85%%, got %v %v", pct, ok)
	}
	sleep := Vital{Kind: VitalSleep, Current: 7.2, Goal: 8}
	if pct, ok := sleep.Progress(); !ok || pct != 90 {
		t.Fatalf("expected 90%%, got %v %v", pct, ok)
	}
	if _, ok := (Vital{Kind: VitalHeartRate, Current: 72}).Progress(); ok {
		t.Fatalf("expected no progress without a goal")
	}
}

func TestVital_Trend(t *testing.T) {
	readings := []VitalReading{{Value: 70}, {Value: 72}, {Value: 74}}
	cases := []struct {
		current float64
		want    Trend
	}{
		{72, TrendStable},
		{73, TrendStable},
		{76, TrendUp},
		{68, TrendDown},
	}
	for _, c := range cases {
		v := Vital{Kind: VitalHeartRate, Current: c.current, Readings: readings}
		if got := v.Trend(); got != c.want {
			t.Errorf("Trend(current=%v) = %s, want %s", c.current, got, c.want)
		}
	}
	if got := (Vital{Current: 5}).Trend(); got != TrendStable {
		t.Fatalf("expected stable without readings, got %s", got)
	}
	if TrendUp.Arrow() != "↗" || TrendDown.Arrow() != "↘" || TrendStable.Arrow() != "→" {
		t.Fatalf("unexpected arrows")
	}
}

func TestVitalsSnapshot_Find(t *testing.T) {
	s := VitalsSnapshot{Vitals: []Vital{{Kind: VitalSteps, Current: 1}, {Kind: VitalSleep, Current: 2}}}
	if v, ok := s.Find(VitalSleep); !ok || v.Current != 2 {
		t.Fatalf("expected sleep vital, got %+v %v", v, ok)
	}
	if _, ok := s.Find(VitalHeartRate); ok {
		t.Fatalf("expected missing heart rate")
	}
}
