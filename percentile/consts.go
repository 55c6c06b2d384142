package percentile

const CurveValuePrecision = 2

var (
	// percentile lines drawn on a growth chart
	StandardPercentiles = []float64{3, 10, 25, 50, 75, 90, 97}
)
