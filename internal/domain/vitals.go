package domain

import (
	"math"
	"strconv"
	"strings"
)

// VitalKind names one of the tracked vital signs.
type VitalKind string

const (
	VitalHeartRate     VitalKind = "heart_rate"
	VitalBloodPressure VitalKind = "blood_pressure"
	VitalSteps         VitalKind = "steps"
	VitalSleep         VitalKind = "sleep"
)

var vitalKinds = []VitalKind{VitalHeartRate, VitalBloodPressure, VitalSteps, VitalSleep}

func (k VitalKind) Valid() bool {
	for _, v := range vitalKinds {
		if k == v {
			return true
		}
	}
	return false
}

func (k VitalKind) Title() string {
	switch k {
	case VitalHeartRate:
		return "Heart Rate"
	case VitalBloodPressure:
		return "Blood Pressure"
	case VitalSteps:
		return "Steps"
	case VitalSleep:
		return "Sleep"
	}
	return string(k)
}

func (k VitalKind) Unit() string {
	switch k {
	case VitalHeartRate:
		return "bpm"
	case VitalBloodPressure:
		return "mmHg"
	case VitalSteps:
		return "steps"
	case VitalSleep:
		return "hours"
	}
	return ""
}

// ParseVitalKind accepts "heart_rate", "heart-rate" or "Heart Rate".
func ParseVitalKind(s string) (VitalKind, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	in = strings.NewReplacer("-", "_", " ", "_").Replace(in)
	k := VitalKind(in)
	if !k.Valid() {
		return "", &InvalidInputError{
			Field:  "kind",
			Reason: strconv.Quote(s) + " is not one of heart_rate, blood_pressure, steps, sleep",
		}
	}
	return k, nil
}

// VitalStatus is the health rating attached to a vital.
type VitalStatus string

const (
	VitalExcellent VitalStatus = "excellent"
	VitalGood      VitalStatus = "good"
	VitalWarning   VitalStatus = "warning"
	VitalCritical  VitalStatus = "critical"
)

func (s VitalStatus) Valid() bool {
	switch s {
	case VitalExcellent, VitalGood, VitalWarning, VitalCritical:
		return true
	}
	return false
}

// Trend is the direction of the current value against recent readings.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

func (t Trend) Arrow() string {
	switch t {
	case TrendUp:
		return "↗"
	case TrendDown:
		return "↘"
	}
	return "→"
}

// trendBand is the relative change under which a value counts as stable.
const trendBand = 0.02

// VitalReading is one point of a vital's series. Secondary carries the
// diastolic value of a blood pressure reading.
type VitalReading struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Secondary float64 `json:"secondary,omitempty"`
}

// Vital is the latest value of one vital sign plus its recent series.
type Vital struct {
	Kind             VitalKind      `json:"kind"`
	Title            string         `json:"title"`
	Unit             string         `json:"unit"`
	Status           VitalStatus    `json:"status"`
	Current          float64        `json:"current"`
	CurrentSecondary float64        `json:"current_secondary,omitempty"`
	Goal             float64        `json:"goal,omitempty"`
	Readings         []VitalReading `json:"readings,omitempty"`
}

// Display renders the current value, "120/80" for blood pressure.
func (v Vital) Display() string {
	s := strconv.FormatFloat(v.Current, 'f', -1, 64)
	if v.Kind == VitalBloodPressure {
		s += "/" + strconv.FormatFloat(v.CurrentSecondary, 'f', -1, 64)
	}
	return s
}

// Progress is Current as a percentage of Goal. ok is false without a goal.
func (v Vital) Progress() (pct float64, ok bool) {
	if v.Goal <= 0 {
		return 0, false
	}
	return math.Round(v.Current/v.Goal*1000) / 10, true
}

// Trend compares Current with the mean of the readings.
func (v Vital) Trend() Trend {
	if len(v.Readings) == 0 {
		return TrendStable
	}
	var sum float64
	for _, r := range v.Readings {
		sum += r.Value
	}
	mean := sum / float64(len(v.Readings))
	if mean == 0 {
		return TrendStable
	}
	switch d := (v.Current - mean) / mean; {
	case d > trendBand:
		return TrendUp
	case d < -trendBand:
		return TrendDown
	}
	return TrendStable
}

// VitalsSnapshot is the content of a workspace vitals file, in file order.
type VitalsSnapshot struct {
	Vitals []Vital
}

func (s VitalsSnapshot) Find(kind VitalKind) (Vital, bool) {
	for _, v := range s.Vitals {
		if v.Kind == kind {
			return v, true
		}
	}
	return Vital{}, false
}
