// Package percentile ranks growth measurements against the WHO reference
// series and generates reference curves for charting.
//
// All functions are safe for concurrent use: they read only the immutable
// reference tables.
package percentile

import (
	"fmt"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/lms"
	"github.com/uyouii/growth-percentiles/model"
	"github.com/uyouii/growth-percentiles/reference"
	"github.com/uyouii/growth-percentiles/utils"
)

// CalculatePercentile ranks value at ageInDays. ok is false when the age is
// outside the reference series, which callers must treat as "cannot assess".
func CalculatePercentile(value float64, ageInDays int, t model.MeasurementType, sex model.Sex) (float64, bool) {
	z, ok := CalculateZScore(value, ageInDays, t, sex)
	if !ok {
		return 0, false
	}
	return lms.ZScoreToPercentile(z), true
}

// CalculateZScore is CalculatePercentile stopping at the Z-score.
func CalculateZScore(value float64, ageInDays int, t model.MeasurementType, sex model.Sex) (float64, bool) {
	if !t.Valid() || !sex.Valid() {
		return 0, false
	}
	series, ok := reference.Lookup(t, sex)
	if !ok || !series.Contains(ageInDays) {
		return 0, false
	}
	return lms.ZScore(series.Interpolate(ageInDays), value), true
}

// GetPercentileCurve returns the expected value at percentile for every
// anchor age of the series, rounded to two decimals. The result is rebuilt
// on each call.
func GetPercentileCurve(percentile float64, t model.MeasurementType, sex model.Sex) (*model.Curve, error) {
	if !t.Valid() || !sex.Valid() {
		return nil, fmt.Errorf("%w: %s/%s", common.ErrorUnknownSeries, t, sex)
	}
	series, err := reference.Get(t, sex)
	if err != nil {
		return nil, err
	}

	z := lms.PercentileToZScore(percentile)

	points := make([]model.CurvePoint, 0, series.Len())
	for i := 0; i < series.Len(); i++ {
		anchor := series.Point(i)
		points = append(points, model.CurvePoint{
			Age:   anchor.Age,
			Value: utils.FormatFloat(lms.ValueAt(anchor.LMS, z), CurveValuePrecision),
		})
	}

	return &model.Curve{
		Percentile: percentile,
		Type:       t,
		Sex:        sex,
		Points:     points,
	}, nil
}

// GetStandardCurves returns one curve per StandardPercentiles entry.
func GetStandardCurves(t model.MeasurementType, sex model.Sex) ([]*model.Curve, error) {
	res := make([]*model.Curve, 0, len(StandardPercentiles))
	for _, p := range StandardPercentiles {
		curve, err := GetPercentileCurve(p, t, sex)
		if err != nil {
			return nil, err
		}
		res = append(res, curve)
	}
	return res, nil
}
