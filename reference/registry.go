package reference

import (
	"fmt"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
)

var registry = map[model.SeriesKey]*Series{}

func init() {
	register(model.Weight, model.Male, whoWeightForAgeBoys)
	register(model.Weight, model.Female, whoWeightForAgeGirls)
	register(model.Height, model.Male, whoLengthForAgeBoys)
	register(model.Height, model.Female, whoLengthForAgeGirls)
	register(model.Head, model.Male, whoHeadForAgeBoys)
	register(model.Head, model.Female, whoHeadForAgeGirls)
}

func register(t model.MeasurementType, sex model.Sex, points []model.ReferencePoint) {
	series, err := NewSeries(t, sex, points)
	if err != nil {
		panic(err)
	}
	registry[series.Key()] = series
}

// Lookup returns the reference series for the measurement type and sex.
func Lookup(t model.MeasurementType, sex model.Sex) (*Series, bool) {
	series, ok := registry[model.SeriesKey{Type: t, Sex: sex}]
	return series, ok
}

// Get is Lookup returning common.ErrorUnknownSeries for unknown keys.
func Get(t model.MeasurementType, sex model.Sex) (*Series, error) {
	series, ok := Lookup(t, sex)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", common.ErrorUnknownSeries, t, sex)
	}
	return series, nil
}
