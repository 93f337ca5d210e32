package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

// Fields evaluates each JSONPath expression against a saved record document.
// Results keep the order of exprs. A failing expression is reported in its
// FieldValue and does not stop the others.
func Fields(doc []byte, exprs []string) []domain.FieldValue {
	if len(exprs) == 0 {
		return []domain.FieldValue{}
	}

	out := make([]domain.FieldValue, 0, len(exprs))

	parsed, err := parseJSON(doc)
	if err != nil {
		for _, e := range exprs {
			out = append(out, domain.FieldValue{
				Expr:    strings.TrimSpace(e),
				Message: "record is not valid JSON",
			})
		}
		return out
	}

	for _, raw := range exprs {
		out = append(out, field(parsed, strings.TrimSpace(raw)))
	}
	return out
}

func field(doc any, expr string) domain.FieldValue {
	fv := domain.FieldValue{Expr: expr}

	if expr == "" {
		fv.Message = "empty jsonpath expression"
		return fv
	}
	if !strings.HasPrefix(expr, "$") {
		expr = "$." + strings.TrimPrefix(expr, ".")
		fv.Expr = expr
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		fv.Message = fmt.Sprintf("jsonpath error: %v", err)
		return fv
	}
	if isEmptyValue(val) {
		fv.Message = "no value found"
		return fv
	}

	s, err := toString(val)
	if err != nil {
		fv.Message = fmt.Sprintf("cannot convert value to string: %v", err)
		return fv
	}

	fv.Value = s
	fv.Found = true
	return fv
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Wildcard paths return a slice; unwrap the single-element case.
	if arr, ok := v.([]any); ok {
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
