package planner

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Normalization converts the loosely-shaped arguments a language model emits
// into one canonical internal representation before any search logic runs.
// All functions here are pure: they never touch the catalog or the
// authorization gate.

const dateLayout = "2006-01-02"

// placeCodes maps known city names to their canonical airport codes.
var placeCodes = map[string]string{
	"jakarta":   "CGK",
	"bali":      "DPS",
	"denpasar":  "DPS",
	"tokyo":     "NRT",
	"paris":     "CDG",
	"barcelona": "BCN",
	"santorini": "JTR",
}

// ResolvePlace turns a free-text place name or an already-valid code into a
// canonical code. Unknown places are upper-cased and passed through
// unchanged; they are never rejected.
func ResolvePlace(in string) string {
	trimmed := strings.TrimSpace(in)
	if code, ok := placeCodes[strings.ToLower(trimmed)]; ok {
		return code
	}
	return strings.ToUpper(trimmed)
}

// StringList accepts a value in any of the shapes callers produce for a list
// of strings: an actual list, a JSON-encoded string of a list, a single bare
// string (one element), or nil (empty). A JSON-looking string that fails to
// parse is a ParameterError, never a silent empty list.
func StringList(param string, v interface{}) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return val, nil
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, newParameterError(param, "list elements must be strings")
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return nil, nil
		}
		if strings.HasPrefix(trimmed, "[") {
			var out []string
			if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
				return nil, newParameterError(param, "malformed JSON list: "+err.Error())
			}
			return out, nil
		}
		return []string{trimmed}, nil
	default:
		return nil, newParameterError(param, "expected a list of strings")
	}
}

// NumberList accepts the same flexible shapes as StringList for lists of
// numbers (cost line items).
func NumberList(param string, v interface{}) ([]float64, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case []float64:
		return val, nil
	case []interface{}:
		out := make([]float64, 0, len(val))
		for _, item := range val {
			n, err := coerceNumber(param, item)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return nil, nil
		}
		if strings.HasPrefix(trimmed, "[") {
			var out []float64
			if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
				return nil, newParameterError(param, "malformed JSON list: "+err.Error())
			}
			return out, nil
		}
		n, err := coerceNumber(param, trimmed)
		if err != nil {
			return nil, err
		}
		return []float64{n}, nil
	default:
		n, err := coerceNumber(param, v)
		if err != nil {
			return nil, err
		}
		return []float64{n}, nil
	}
}

// Date parses a YYYY-MM-DD date string. A malformed value is a
// ParameterError; semantic checks (ordering) belong to the tools.
func Date(param, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, newParameterError(param, "expected YYYY-MM-DD date")
	}
	return t, nil
}

func coerceNumber(param string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, newParameterError(param, "expected a number")
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, newParameterError(param, "expected a number")
		}
		return f, nil
	default:
		return 0, newParameterError(param, "expected a number")
	}
}
