package model

import (
	"fmt"
	"time"
)

type BabyProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
	Sex       Sex       `json:"sex"`
}

// GrowthMeasurement values are stored in SI units. A zero value means the
// dimension was not recorded.
type GrowthMeasurement struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	AgeInDays int       `json:"age_in_days"`
	WeightKg  float64   `json:"weight_kg,omitempty"`
	HeightCm  float64   `json:"height_cm,omitempty"`
	HeadCm    float64   `json:"head_cm,omitempty"`
}

func (m *GrowthMeasurement) Value(t MeasurementType) float64 {
	switch t {
	case Weight:
		return m.WeightKg
	case Height:
		return m.HeightCm
	case Head:
		return m.HeadCm
	}
	return 0
}

// Assessment carries the percentile of each dimension of one measurement.
// A nil percentile means it could not be assessed.
type Assessment struct {
	MeasurementID    string   `json:"measurement_id"`
	AgeInDays        int      `json:"age_in_days"`
	WeightPercentile *float64 `json:"weight_percentile,omitempty"`
	HeightPercentile *float64 `json:"height_percentile,omitempty"`
	HeadPercentile   *float64 `json:"head_percentile,omitempty"`
}

func (a *Assessment) Percentile(t MeasurementType) (float64, bool) {
	var p *float64
	switch t {
	case Weight:
		p = a.WeightPercentile
	case Height:
		p = a.HeightPercentile
	case Head:
		p = a.HeadPercentile
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

func (a *Assessment) SetPercentile(t MeasurementType, percentile float64) {
	switch t {
	case Weight:
		a.WeightPercentile = &percentile
	case Height:
		a.HeightPercentile = &percentile
	case Head:
		a.HeadPercentile = &percentile
	}
}

func (a *Assessment) DebugString() string {
	res := fmt.Sprintf("measurement: %v, age: %v", a.MeasurementID, a.AgeInDays)
	for _, t := range AllMeasurementTypes {
		if p, ok := a.Percentile(t); ok {
			res += fmt.Sprintf(", %s: %v", t, p)
		}
	}
	return res
}
