package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightFactors(t *testing.T) {
	cases := map[string]float64{
		HeightMeters:      1,
		HeightCentimeters: 100,
		HeightInches:      39.3701,
	}
	for unit, want := range cases {
		f, err := HeightFactor(unit)
		require.NoError(t, err)
		assert.Equal(t, want, f)
	}
}

func TestHeightConversionRoundTrips(t *testing.T) {
	f, err := HeightFactor(HeightCentimeters)
	require.NoError(t, err)

	height := 1.5696
	assert.InDelta(t, height, height*f/100, 1e-12)
}

func TestWeightFactors(t *testing.T) {
	f, err := WeightFactor(WeightKilograms)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)

	f, err = WeightFactor(WeightPounds)
	require.NoError(t, err)
	assert.Equal(t, 2.20462, f)
}

func TestUnknownUnitTokens(t *testing.T) {
	_, err := HeightFactor("ft")
	assert.ErrorContains(t, err, "height-unit must be either 'm', 'cm', or 'in'")

	_, err = WeightFactor("stone")
	assert.ErrorContains(t, err, "weight-unit must be either 'kg' or 'lbs'")
}
