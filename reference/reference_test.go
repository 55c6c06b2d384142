package reference

import (
	"errors"
	"math"
	"testing"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
)

func TestRegistryHasAllSeries(t *testing.T) {
	for _, mt := range model.AllMeasurementTypes {
		for _, sex := range model.AllSexes {
			series, ok := Lookup(mt, sex)
			if !ok {
				t.Fatalf("missing series %s/%s", mt, sex)
			}
			if series.AgeMin() != 0 || series.AgeMax() != 731 {
				t.Fatalf("%s: expected domain [0, 731], got [%d, %d]", series.Key(), series.AgeMin(), series.AgeMax())
			}
			if series.Len() != 25 {
				t.Fatalf("%s: expected 25 anchors, got %d", series.Key(), series.Len())
			}
		}
	}
}

func TestGetUnknownSeries(t *testing.T) {
	if _, ok := Lookup("bmi", model.Male); ok {
		t.Fatal("expected no series for bmi")
	}
	_, err := Get(model.Weight, "other")
	if !errors.Is(err, common.ErrorUnknownSeries) {
		t.Fatalf("expected ErrorUnknownSeries, got %v", err)
	}
}

func TestNewSeriesValidation(t *testing.T) {
	valid := model.LMS{L: 1, M: 50, S: 0.03}
	cases := []struct {
		name   string
		points []model.ReferencePoint
	}{
		{"empty", nil},
		{"single point", []model.ReferencePoint{{Age: 0, LMS: valid}}},
		{"duplicate age", []model.ReferencePoint{{Age: 0, LMS: valid}, {Age: 0, LMS: valid}}},
		{"descending age", []model.ReferencePoint{{Age: 30, LMS: valid}, {Age: 0, LMS: valid}}},
		{"negative age", []model.ReferencePoint{{Age: -1, LMS: valid}, {Age: 30, LMS: valid}}},
		{"zero median", []model.ReferencePoint{{Age: 0, LMS: valid}, {Age: 30, LMS: model.LMS{L: 1, M: 0, S: 0.03}}}},
		{"negative sigma", []model.ReferencePoint{{Age: 0, LMS: model.LMS{L: 1, M: 50, S: -0.1}}, {Age: 30, LMS: valid}}},
	}
	for _, c := range cases {
		if _, err := NewSeries(model.Height, model.Male, c.points); !errors.Is(err, common.ErrorInvalidSeries) {
			t.Fatalf("%s: expected ErrorInvalidSeries, got %v", c.name, err)
		}
	}
}

func TestNewSeriesCopiesPoints(t *testing.T) {
	points := []model.ReferencePoint{
		{Age: 0, LMS: model.LMS{L: 1, M: 50, S: 0.03}},
		{Age: 30, LMS: model.LMS{L: 1, M: 55, S: 0.03}},
	}
	series, err := NewSeries(model.Height, model.Female, points)
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}

	points[0].M = 1
	if series.Point(0).M != 50 {
		t.Fatalf("series changed with caller slice: M %v", series.Point(0).M)
	}

	out := series.Points()
	out[1].M = 1
	if series.Point(1).M != 55 {
		t.Fatalf("series changed through Points(): M %v", series.Point(1).M)
	}
}

func TestContains(t *testing.T) {
	series, _ := Lookup(model.Weight, model.Male)
	cases := []struct {
		age  int
		want bool
	}{
		{-1, false},
		{0, true},
		{400, true},
		{731, true},
		{732, false},
		{1000, false},
	}
	for _, c := range cases {
		if got := series.Contains(c.age); got != c.want {
			t.Fatalf("age %d: expected %v, got %v", c.age, c.want, got)
		}
	}
}

func TestInterpolateAtAnchors(t *testing.T) {
	for _, mt := range model.AllMeasurementTypes {
		for _, sex := range model.AllSexes {
			series, _ := Lookup(mt, sex)
			for _, point := range series.Points() {
				if got := series.Interpolate(point.Age); got != point.LMS {
					t.Fatalf("%s age %d: expected %+v, got %+v", series.Key(), point.Age, point.LMS, got)
				}
			}
		}
	}
}

func TestInterpolateBetweenAnchors(t *testing.T) {
	series, _ := Lookup(model.Weight, model.Male)
	got := series.Interpolate(15)

	want := model.LMS{
		L: (0.3487 + 0.2297) / 2,
		M: (3.3464 + 4.4709) / 2,
		S: (0.14602 + 0.13395) / 2,
	}
	if math.Abs(got.L-want.L) > 1e-12 || math.Abs(got.M-want.M) > 1e-12 || math.Abs(got.S-want.S) > 1e-12 {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestInterpolateStaysBetweenNeighbours(t *testing.T) {
	series, _ := Lookup(model.Head, model.Female)
	for age := series.AgeMin(); age <= series.AgeMax(); age++ {
		got := series.Interpolate(age)
		for i := 0; i < series.Len()-1; i++ {
			lower, upper := series.Point(i), series.Point(i+1)
			if age < lower.Age || age > upper.Age {
				continue
			}
			if got.M < math.Min(lower.M, upper.M) || got.M > math.Max(lower.M, upper.M) {
				t.Fatalf("age %d: M %v outside [%v, %v]", age, got.M, lower.M, upper.M)
			}
			break
		}
	}
}

func TestInterpolateOutsideDomainPinsToEnds(t *testing.T) {
	series, _ := Lookup(model.Height, model.Male)
	if got := series.Interpolate(-10); got != series.Point(0).LMS {
		t.Fatalf("expected first anchor, got %+v", got)
	}
	if got := series.Interpolate(5000); got != series.Point(series.Len()-1).LMS {
		t.Fatalf("expected last anchor, got %+v", got)
	}
}

func TestInterpolateEveryDayMatchesLinearFormula(t *testing.T) {
	for _, mt := range model.AllMeasurementTypes {
		for _, sex := range model.AllSexes {
			series, _ := Lookup(mt, sex)
			for i := 0; i < series.Len()-1; i++ {
				lower, upper := series.Point(i), series.Point(i+1)
				for age := lower.Age; age <= upper.Age; age++ {
					ratio := float64(age-lower.Age) / float64(upper.Age-lower.Age)
					want := model.LMS{
						L: lower.L + ratio*(upper.L-lower.L),
						M: lower.M + ratio*(upper.M-lower.M),
						S: lower.S + ratio*(upper.S-lower.S),
					}
					got := series.Interpolate(age)
					if math.Abs(got.L-want.L) > 1e-12 || math.Abs(got.M-want.M) > 1e-12 || math.Abs(got.S-want.S) > 1e-12 {
						t.Fatalf("%s age %d: expected %+v, got %+v", series.Key(), age, want, got)
					}
				}
			}
		}
	}
}

func TestInterpolateIgnoresCallerSlice(t *testing.T) {
	points := []model.ReferencePoint{
		{Age: 0, LMS: model.LMS{L: 1, M: 50, S: 0.03}},
		{Age: 30, LMS: model.LMS{L: 1, M: 56, S: 0.03}},
	}
	series, err := NewSeries(model.Height, model.Male, points)
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}
	points[1].M = 1000
	if got := series.Interpolate(15); math.Abs(got.M-53) > 1e-12 {
		t.Fatalf("expected M 53, got %v", got.M)
	}
}
