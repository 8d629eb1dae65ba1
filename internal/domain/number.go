package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that tolerates sloppy wire shapes. The backend
// serves loosely-typed JSON, so numeric fields may arrive as numbers,
// numeric strings, nulls, or garbage; anything unusable decodes to 0.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*n = coerce(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*n = coerce(f)
			return nil
		}
	}
	*n = 0
	return nil
}

// MarshalJSON implements json.Marshaler, emitting a plain JSON number.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// Float64 returns the underlying value.
func (n Number) Float64() float64 {
	return float64(n)
}

func coerce(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Number(f)
}
