// Package units converts canonical SI measurements into the units a client
// asked for. Stored values are always meters and kilograms; conversion is a
// presentation-time multiply and nothing else.
package units

import (
	"github.com/johnzhangfit/verttracker/internal/apperrors"
)

const (
	HeightMeters      = "m"
	HeightCentimeters = "cm"
	HeightInches      = "in"

	WeightKilograms = "kg"
	WeightPounds    = "lbs"
)

var heightFactors = map[string]float64{
	HeightMeters:      1,
	HeightCentimeters: 100,
	HeightInches:      39.3701,
}

var weightFactors = map[string]float64{
	WeightKilograms: 1,
	WeightPounds:    2.20462,
}

// HeightFactor returns the meters-to-unit multiplier for a height unit token.
func HeightFactor(unit string) (float64, error) {
	f, ok := heightFactors[unit]
	if !ok {
		return 0, apperrors.Validation("height-unit must be either 'm', 'cm', or 'in'")
	}
	return f, nil
}

// WeightFactor returns the kilograms-to-unit multiplier for a weight unit token.
func WeightFactor(unit string) (float64, error) {
	f, ok := weightFactors[unit]
	if !ok {
		return 0, apperrors.Validation("weight-unit must be either 'kg' or 'lbs'")
	}
	return f, nil
}
