package model

import "fmt"

type MeasurementType string

const (
	Weight MeasurementType = "weight"
	Height MeasurementType = "height" // recumbent length below 24 months
	Head   MeasurementType = "head"   // head circumference
)

var AllMeasurementTypes = []MeasurementType{Weight, Height, Head}

func (t MeasurementType) Valid() bool {
	switch t {
	case Weight, Height, Head:
		return true
	}
	return false
}

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

var AllSexes = []Sex{Male, Female}

func (s Sex) Valid() bool {
	return s == Male || s == Female
}

// SeriesKey identifies one of the six reference series.
type SeriesKey struct {
	Type MeasurementType
	Sex  Sex
}

func (k SeriesKey) String() string {
	return fmt.Sprintf("%s/%s", k.Type, k.Sex)
}

// LMS holds the Box-Cox power (L), median (M) and coefficient of variation (S).
type LMS struct {
	L float64 `json:"l"`
	M float64 `json:"m"`
	S float64 `json:"s"`
}

// ReferencePoint is one published anchor: the LMS triple at an age in days.
type ReferencePoint struct {
	Age int `json:"age"`
	LMS
}

type CurvePoint struct {
	Age   int     `json:"age"`
	Value float64 `json:"value"`
}

// Curve is the expected value at a fixed percentile for every anchor age.
type Curve struct {
	Percentile float64         `json:"percentile"`
	Type       MeasurementType `json:"type"`
	Sex        Sex             `json:"sex"`
	Points     []CurvePoint    `json:"points"`
}

func (c *Curve) IsEmpty() bool {
	if c == nil {
		return true
	}
	return len(c.Points) == 0
}
