package summary

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders v as the shortest text that round-trips, in the style
// load-test tooling commonly emits: integral values keep a ".0" suffix and
// scientific notation is used only below 1e-4 or from 1e16 upward.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
