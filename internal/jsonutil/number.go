package jsonutil

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a float64 that decodes leniently: JSON numbers, quoted numbers,
// null, and anything unparsable all decode without error, defaulting to 0.
// Record amounts use it at the input boundary so a malformed field degrades
// to zero instead of rejecting the whole record.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var q string
		if err := json.Unmarshal(b, &q); err != nil {
			*n = 0
			return nil
		}
		s = strings.TrimSpace(q)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 { return float64(n) }
