// Package reference holds the WHO LMS reference series, one per
// measurement type and sex, and interpolates LMS parameters by age.
package reference

import (
	"fmt"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
	"go.uber.org/multierr"
)

// Series is an immutable age-ordered sequence of reference points.
type Series struct {
	key          model.SeriesKey
	points       []model.ReferencePoint
	interpolator lmsInterpolator
}

// NewSeries copies points and checks that ages are non-negative and
// strictly increasing, M and S positive, and that at least two points exist.
func NewSeries(t model.MeasurementType, sex model.Sex, points []model.ReferencePoint) (*Series, error) {
	key := model.SeriesKey{Type: t, Sex: sex}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: %s has %d points, need at least 2",
			common.ErrorInvalidSeries, key, len(points))
	}

	var err error
	for i, point := range points {
		if point.Age < 0 {
			err = multierr.Append(err, fmt.Errorf("point %d: negative age %d", i, point.Age))
		}
		if i > 0 && point.Age <= points[i-1].Age {
			err = multierr.Append(err, fmt.Errorf("point %d: age %d not after %d", i, point.Age, points[i-1].Age))
		}
		if !(point.M > 0) {
			err = multierr.Append(err, fmt.Errorf("point %d: M %v not positive", i, point.M))
		}
		if !(point.S > 0) {
			err = multierr.Append(err, fmt.Errorf("point %d: S %v not positive", i, point.S))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrorInvalidSeries, key, err)
	}

	copied := make([]model.ReferencePoint, len(points))
	copy(copied, points)
	series := &Series{key: key, points: copied}
	if err := series.interpolator.fit(copied); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrorInvalidSeries, key, err)
	}
	return series, nil
}

func (s *Series) Key() model.SeriesKey {
	return s.key
}

func (s *Series) Len() int {
	return len(s.points)
}

func (s *Series) AgeMin() int {
	return s.points[0].Age
}

func (s *Series) AgeMax() int {
	return s.points[len(s.points)-1].Age
}

// Contains reports whether ageInDays lies within [AgeMin, AgeMax].
func (s *Series) Contains(ageInDays int) bool {
	return ageInDays >= s.AgeMin() && ageInDays <= s.AgeMax()
}

// Points returns a copy of the anchors in ascending age order.
func (s *Series) Points() []model.ReferencePoint {
	res := make([]model.ReferencePoint, len(s.points))
	copy(res, s.points)
	return res
}

func (s *Series) Point(i int) model.ReferencePoint {
	return s.points[i]
}
