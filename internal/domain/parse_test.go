package domain

import (
	"errors"
	"testing"
)

func TestParseMeasurement(t *testing.T) {
	m, err := ParseMeasurement(" 70 ", "175.5", "", Metric)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Weight != 70 || m.Height != 175.5 || m.Units != Metric {
		t.Fatalf("unexpected measurement %+v", m)
	}

	m, err = ParseMeasurement("154", "69", "imperial", Metric)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Units != Imperial {
		t.Fatalf("expected explicit unit to win over default, got %s", m.Units)
	}
}

func TestParseMeasurement_InvalidDefaultFallsBackToMetric(t *testing.T) {
	m, err := ParseMeasurement("70", "175", "", UnitSystem(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Units != Metric {
		t.Fatalf("expected metric fallback, got %q", m.Units)
	}
}

func TestParseMeasurement_Errors(t *testing.T) {
	cases := []struct {
		weight, height, units string
		field                 string
	}{
		{"abc", "170", "metric", "weight"},
		{"70", "", "metric", "height"},
		{"", "170", "", "weight"},
		{"70", "170", "furlongs", "units"},
	}
	for _, c := range cases {
		_, err := ParseMeasurement(c.weight, c.height, c.units, Metric)
		var ie *InvalidInputError
		if !errors.As(err, &ie) {
			t.Fatalf("ParseMeasurement(%q,%q,%q): expected InvalidInputError, got %v", c.weight, c.height, c.units, err)
		}
		if ie.Field != c.field {
			t.Fatalf("expected field %q, got %q", c.field, ie.Field)
		}
	}
}
