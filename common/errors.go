package common

import "errors"

var (
	ErrorInvalidValue  = errors.New("invalid value")
	ErrorInvalidSeries = errors.New("invalid reference series")
	ErrorUnknownSeries = errors.New("unknown reference series")
)
