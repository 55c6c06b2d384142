// Package units converts between metric and imperial measurement units.
// Growth values are stored in kilograms and centimetres.
package units

import "github.com/uyouii/growth-percentiles/utils"

const (
	KgToLbFactor = 2.20462
	CmToInFactor = 0.393701
)

// KgToLb rounds to 2 decimal places.
func KgToLb(kg float64) float64 {
	return utils.FormatFloat(kg*KgToLbFactor, 2)
}

// LbToKg rounds to 3 decimal places for storage.
func LbToKg(lb float64) float64 {
	return utils.FormatFloat(lb*(1/KgToLbFactor), 3)
}

func CmToIn(cm float64) float64 {
	return utils.FormatFloat(cm*CmToInFactor, 2)
}

func InToCm(in float64) float64 {
	return utils.FormatFloat(in*(1/CmToInFactor), 2)
}
