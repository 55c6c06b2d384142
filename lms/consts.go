package lms

const (
	// below this |L| the Box-Cox transform is taken as the log limit
	LambdaZeroThreshold = 1e-4

	MinZScore          = -3.5
	MaxZScore          = 3.5
	MinClampPercentile = 0.02
	MaxClampPercentile = 99.98

	MinInversePercentile = 0.01
	MaxInversePercentile = 99.99

	PercentilePrecision = 2
)

// Zelen & Severo (1964) normal CDF approximation, 26.2.17 in Abramowitz & Stegun.
const (
	cdfP  = 0.2316419
	cdfD  = 0.3989423
	cdfB1 = 0.3193815
	cdfB2 = -0.3565638
	cdfB3 = 1.781478
	cdfB4 = -1.821256
	cdfB5 = 1.330274
)

// Hastings rational approximation of the normal quantile, 26.2.23 in Abramowitz & Stegun.
const (
	invC0 = 2.515517
	invC1 = 0.802853
	invC2 = 0.010328
	invD1 = 1.432788
	invD2 = 0.189269
	invD3 = 0.001308
)
