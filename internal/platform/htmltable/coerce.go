package htmltable

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	intPattern     = regexp.MustCompile(`^[+-]?\d+$`)
	decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+)$`)
)

// Int coerces cell text to an integer. Thousands separators and whitespace
// are ignored, a decimal is truncated toward zero, and anything else is 0.
func Int(raw string) int {
	s := normalizeNumber(raw)
	if intPattern.MatchString(s) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return v
	}
	if decimalPattern.MatchString(s) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(v, 0) || v >= math.MaxInt64 || v <= math.MinInt64 {
			return 0
		}
		return int(v)
	}
	return 0
}

// Float coerces cell text to a float64 under the same rules as Int.
func Float(raw string) float64 {
	s := normalizeNumber(raw)
	if !intPattern.MatchString(s) && !decimalPattern.MatchString(s) {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func normalizeNumber(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '\t', '\n', '\r', '\u00a0':
			return -1
		}
		return r
	}, raw)
}
