package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a non-negative currency value. Collection files are hand-editable
// and feeds from older clients stored amounts as strings, so decoding is
// tolerant: numbers and numeric strings are accepted, anything else decodes
// to 0 instead of failing the whole collection.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*a = Amount(parsed)
			return nil
		}
	}

	*a = 0
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	v := float64(a)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return json.Marshal(v)
}

// Sanitized coerces non-finite and negative values to 0 so aggregation never
// propagates NaN into a summary.
func (a Amount) Sanitized() float64 {
	v := float64(a)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
