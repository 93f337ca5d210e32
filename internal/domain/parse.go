package domain

import (
	"strconv"
	"strings"
)

// ParseMeasurement turns raw form or flag text into a Measurement.
// An empty unit falls back to def. Values are not range-checked here;
// Evaluate owns that.
func ParseMeasurement(weightText, heightText, unitText string, def UnitSystem) (Measurement, error) {
	units := def
	if strings.TrimSpace(unitText) != "" {
		u, err := ParseUnitSystem(unitText)
		if err != nil {
			return Measurement{}, err
		}
		units = u
	}
	if !units.Valid() {
		units = Metric
	}

	w, err := parseNumber("weight", weightText)
	if err != nil {
		return Measurement{}, err
	}
	h, err := parseNumber("height", heightText)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{Weight: w, Height: h, Units: units}, nil
}

func parseNumber(field, s string) (float64, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return 0, &InvalidInputError{Field: field, Reason: "is required"}
	}
	v, err := strconv.ParseFloat(in, 64)
	if err != nil {
		return 0, &InvalidInputError{Field: field, Reason: strconv.Quote(in) + " is not a number"}
	}
	return v, nil
}
