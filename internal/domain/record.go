package domain

import "time"

// EvaluationRecord is a saved BMI evaluation.
type EvaluationRecord struct {
	ID          string      `json:"id"`
	Measurement Measurement `json:"measurement"`
	Result      BMIResult   `json:"result"`
	EvaluatedAt time.Time   `json:"evaluated_at"`
	Note        string      `json:"note,omitempty"`
}

// HistoryRef is a lightweight pointer to a saved record.
type HistoryRef struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	EvaluatedAt time.Time `json:"evaluated_at"`
	BMI         float64   `json:"bmi"`
	Category    Category  `json:"category"`
}

// HistorySummary aggregates a set of records.
type HistorySummary struct {
	Count      int
	ByCategory map[Category]int
	Latest     *EvaluationRecord
	MinBMI     float64
	MaxBMI     float64
}

// FieldValue is one JSONPath lookup against a saved record.
type FieldValue struct {
	Expr    string
	Value   string
	Found   bool
	Message string
}
