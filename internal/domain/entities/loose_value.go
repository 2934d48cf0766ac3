package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// LooseValue keeps a scalar JSON value exactly as it was received so it can be
// coerced to a number (or read back as text) later, without rejecting input.
type LooseValue struct {
	raw    string
	set    bool
	null   bool
	quoted bool
}

// NewLooseString builds a LooseValue as if the JSON string s had been received.
func NewLooseString(s string) LooseValue {
	return LooseValue{raw: s, set: true, quoted: true}
}

// NewLooseNumber builds a LooseValue as if the JSON number n had been received.
func NewLooseNumber(n float64) LooseValue {
	return LooseValue{raw: strconv.FormatFloat(n, 'f', -1, 64), set: true}
}

func (v *LooseValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	v.set = true
	v.null = false
	v.quoted = false

	if string(data) == "null" {
		v.raw = ""
		v.null = true
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v.raw = s
		v.quoted = true
		return nil
	}
	v.raw = string(data)
	return nil
}

func (v LooseValue) MarshalJSON() ([]byte, error) {
	switch {
	case !v.set, v.null:
		return []byte("null"), nil
	case v.quoted:
		return json.Marshal(v.raw)
	default:
		return []byte(v.raw), nil
	}
}

// IsSet reports whether the field was present in the decoded document.
func (v LooseValue) IsSet() bool {
	return v.set
}

// String returns the value as text; absent and null values are empty.
func (v LooseValue) String() string {
	if !v.set || v.null {
		return ""
	}
	return v.raw
}

// Number coerces the value the way a browser-side Number() call would:
// absent is NaN, null is 0, blank text is 0 and unparseable text is NaN.
func (v LooseValue) Number() float64 {
	if !v.set {
		return math.NaN()
	}
	if v.null {
		return 0
	}
	if !v.quoted {
		switch v.raw {
		case "true":
			return 1
		case "false":
			return 0
		}
		if strings.HasPrefix(v.raw, "{") || strings.HasPrefix(v.raw, "[") {
			return math.NaN()
		}
	}
	return coerceNumber(v.raw)
}

func coerceNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.Contains(s, "_") {
				return math.NaN()
			}
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	// strconv accepts spellings that are not numeric literals here
	// ("inf", "nan", "1_0", hex floats), so reject them up front.
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") ||
		strings.Contains(lower, "x") || strings.Contains(s, "_") {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}
