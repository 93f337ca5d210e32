package domain

import (
	"fmt"
	"math"
	"strings"
)

// UnitSystem selects how Measurement.Weight and Measurement.Height are read.
type UnitSystem string

const (
	// Metric reads weight in kilograms and height in centimeters.
	// Height in meters is not accepted; 1.75 is treated as 1.75 cm.
	Metric UnitSystem = "metric"
	// Imperial reads weight in pounds and height in inches.
	Imperial UnitSystem = "imperial"
)

// Valid reports whether u is a known unit system.
func (u UnitSystem) Valid() bool {
	return u == Metric || u == Imperial
}

// WeightUnit returns the display unit for weight.
func (u UnitSystem) WeightUnit() string {
	if u == Imperial {
		return "lbs"
	}
	return "kg"
}

// HeightUnit returns the display unit for height.
func (u UnitSystem) HeightUnit() string {
	if u == Imperial {
		return "in"
	}
	return "cm"
}

// ParseUnitSystem accepts "metric" or "imperial" in any case.
func ParseUnitSystem(s string) (UnitSystem, error) {
	u := UnitSystem(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", &InvalidInputError{Field: "units", Reason: fmt.Sprintf("unsupported unit system %q (expected metric|imperial)", s)}
	}
	return u, nil
}

// Category is a BMI risk band.
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// Categories lists the bands in ascending BMI order.
var Categories = []Category{Underweight, Normal, Overweight, Obese}

// Band thresholds. Lower bounds are inclusive.
const (
	NormalFloor     = 18.5
	OverweightFloor = 25.0
	ObeseFloor      = 30.0
)

var riskDescriptions = map[Category]string{
	Underweight: "May indicate nutritional deficiency",
	Normal:      "Low risk of health complications",
	Overweight:  "Increased risk of health issues",
	Obese:       "High risk of serious health complications",
}

var categoryLabels = map[Category]string{
	Underweight: "Underweight",
	Normal:      "Normal weight",
	Overweight:  "Overweight",
	Obese:       "Obese",
}

// RiskDescription returns the fixed description bound to c.
func (c Category) RiskDescription() string {
	return riskDescriptions[c]
}

// Label is the human-facing name of the band.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Range renders the band bounds, e.g. "18.5 - 24.9".
func (c Category) Range() string {
	switch c {
	case Underweight:
		return fmt.Sprintf("< %.1f", NormalFloor)
	case Normal:
		return fmt.Sprintf("%.1f - %.1f", NormalFloor, OverweightFloor-0.1)
	case Overweight:
		return fmt.Sprintf("%.1f - %.1f", OverweightFloor, ObeseFloor-0.1)
	case Obese:
		return fmt.Sprintf(">= %.1f", ObeseFloor)
	default:
		return ""
	}
}

// Classify maps a BMI value to its band using half-open intervals.
func Classify(bmi float64) Category {
	switch {
	case bmi < NormalFloor:
		return Underweight
	case bmi < OverweightFloor:
		return Normal
	case bmi < ObeseFloor:
		return Overweight
	default:
		return Obese
	}
}

// Measurement is a weight/height pair in the units named by Units.
type Measurement struct {
	Weight float64    `json:"weight"`
	Height float64    `json:"height"`
	Units  UnitSystem `json:"units"`
}

// BMIResult is the outcome of Evaluate.
type BMIResult struct {
	BMI             float64  `json:"bmi"`
	Category        Category `json:"category"`
	RiskDescription string   `json:"risk_description"`
}

// Evaluate computes the BMI for weight and height in the given unit system.
//
// The returned BMI is rounded to one decimal place; the category is chosen
// from the unrounded value, so 24.96 reports 25.0 yet stays Normal.
// Non-positive, NaN or infinite inputs and unknown unit systems yield an
// *InvalidInputError and a zero BMIResult.
func Evaluate(weight, height float64, units UnitSystem) (BMIResult, error) {
	if err := checkPositive("weight", weight); err != nil {
		return BMIResult{}, err
	}
	if err := checkPositive("height", height); err != nil {
		return BMIResult{}, err
	}

	// Scale the numerator before dividing so centimeter inputs that sit
	// exactly on a threshold (64 kg at 160 cm) stay exact.
	var bmi float64
	switch units {
	case Metric:
		bmi = weight * 10000 / (height * height)
	case Imperial:
		bmi = weight * 703 / (height * height)
	default:
		return BMIResult{}, &InvalidInputError{Field: "units", Reason: fmt.Sprintf("unsupported unit system %q", units)}
	}

	// Extreme but finite inputs can still overflow or underflow.
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) || bmi <= 0 {
		return BMIResult{}, &InvalidInputError{Field: "bmi", Value: bmi, Reason: "measurement produces no finite BMI"}
	}

	bmi = snap(bmi)
	category := Classify(bmi)
	return BMIResult{
		BMI:             round1(bmi),
		Category:        category,
		RiskDescription: category.RiskDescription(),
	}, nil
}

// Evaluate is a convenience wrapper around the package-level Evaluate.
func (m Measurement) Evaluate() (BMIResult, error) {
	return Evaluate(m.Weight, m.Height, m.Units)
}

func checkPositive(field string, v float64) error {
	switch {
	case math.IsNaN(v):
		return &InvalidInputError{Field: field, Value: v, Reason: "must be a number"}
	case math.IsInf(v, 0):
		return &InvalidInputError{Field: field, Value: v, Reason: "must be finite"}
	case v <= 0:
		return &InvalidInputError{Field: field, Value: v, Reason: "must be greater than zero"}
	}
	return nil
}

// snap drops float noise below 1e-9 so 18.499999999999996 classifies as 18.5.
func snap(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

// round1 rounds half-up to one decimal place.
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
