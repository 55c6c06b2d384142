// Package lms implements the WHO Lambda-Mu-Sigma transform between a
// measurement and its Z-score, and between Z-scores and percentiles.
//
// The forward CDF and the inverse CDF are two independent polynomial
// approximations. They are not exact inverses of each other: a percentile
// round trip drifts by up to about 0.1.
package lms

import (
	"math"

	"github.com/uyouii/growth-percentiles/model"
	"github.com/uyouii/growth-percentiles/utils"
)

// CalculateZScore returns the LMS Z-score of value.
// Callers must ensure value > 0, M > 0 and S > 0.
func CalculateZScore(value, L, M, S float64) float64 {
	if math.Abs(L) < LambdaZeroThreshold {
		return math.Log(value/M) / S
	}
	return (math.Pow(value/M, L) - 1) / (L * S)
}

// ValueAtZScore inverts CalculateZScore: the measurement lying z standard
// units from the median.
func ValueAtZScore(z, L, M, S float64) float64 {
	if math.Abs(L) < LambdaZeroThreshold {
		return M * math.Exp(z*S)
	}
	return M * math.Pow(1+L*S*z, 1/L)
}

// ZScoreToPercentile converts z to a percentile in [0, 100] rounded to
// two decimal places. Scores beyond ±3.5 are clamped.
func ZScoreToPercentile(z float64) float64 {
	if z < MinZScore {
		return MinClampPercentile
	}
	if z > MaxZScore {
		return MaxClampPercentile
	}

	t := 1 / (1 + cdfP*math.Abs(z))
	d := cdfD * math.Exp(-z*z/2)
	prob := d * t * (cdfB1 + t*(cdfB2+t*(cdfB3+t*(cdfB4+t*cdfB5))))

	percentile := prob * 100
	if z > 0 {
		percentile = (1 - prob) * 100
	}
	return utils.FormatFloat(percentile, PercentilePrecision)
}

// PercentileToZScore is the approximate inverse of ZScoreToPercentile.
// The input is clamped to [0.01, 99.99].
func PercentileToZScore(percentile float64) float64 {
	percentile = math.Max(MinInversePercentile, math.Min(MaxInversePercentile, percentile))
	p := percentile / 100

	var t, sign float64
	if p < 0.5 {
		t, sign = math.Sqrt(-2*math.Log(p)), -1
	} else {
		t, sign = math.Sqrt(-2*math.Log(1-p)), 1
	}

	numerator := invC0 + invC1*t + invC2*t*t
	denominator := 1 + invD1*t + invD2*t*t + invD3*t*t*t
	return sign * (t - numerator/denominator)
}

// ZScore computes the Z-score of value under p.
func ZScore(p model.LMS, value float64) float64 {
	return CalculateZScore(value, p.L, p.M, p.S)
}

// ValueAt returns the value lying z standard units from the median of p.
func ValueAt(p model.LMS, z float64) float64 {
	return ValueAtZScore(z, p.L, p.M, p.S)
}
