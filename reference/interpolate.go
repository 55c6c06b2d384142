package reference

import (
	"github.com/uyouii/growth-percentiles/model"
	"gonum.org/v1/gonum/interp"
)

// lmsInterpolator interpolates each of L, M and S independently over age.
type lmsInterpolator struct {
	l, m, s interp.PiecewiseLinear
}

// fit expects points already validated by NewSeries.
func (i *lmsInterpolator) fit(points []model.ReferencePoint) error {
	ages := make([]float64, len(points))
	ls, ms, ss := make([]float64, len(points)), make([]float64, len(points)), make([]float64, len(points))
	for j, point := range points {
		ages[j] = float64(point.Age)
		ls[j], ms[j], ss[j] = point.L, point.M, point.S
	}
	if err := i.l.Fit(ages, ls); err != nil {
		return err
	}
	if err := i.m.Fit(ages, ms); err != nil {
		return err
	}
	return i.s.Fit(ages, ss)
}

// Interpolate returns the LMS parameters at ageInDays. An anchor age yields
// that anchor's parameters unchanged; other ages interpolate L, M and S
// linearly between the bracketing anchors. The caller checks Contains first;
// ages outside the series are pinned to the nearest end anchor.
func (s *Series) Interpolate(ageInDays int) model.LMS {
	age := float64(ageInDays)
	return model.LMS{
		L: s.interpolator.l.Predict(age),
		M: s.interpolator.m.Predict(age),
		S: s.interpolator.s.Predict(age),
	}
}
