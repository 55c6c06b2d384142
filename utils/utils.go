package utils

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

// AgeInDays returns the whole calendar days from birth to measured, both
// truncated to the start of their UTC day. Negative when measured precedes birth.
func AgeInDays(birth, measured time.Time) int {
	b := startOfDay(birth)
	m := startOfDay(measured)
	return int(math.Round(m.Sub(b).Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatFloat rounds half away from zero to prec decimal places.
func FormatFloat(f float64, prec int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	return scalar.Round(f, prec)
}
