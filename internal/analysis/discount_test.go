package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPVAtZeroRateIsPlainSum(t *testing.T) {
	series := [][]float64{
		{-1000, 300, 300, 300, 300},
		{5},
		{-0.5, 0.25, 0.125, -3.75},
		{0, 0, 0},
	}

	for _, netos := range series {
		suma := 0.0
		for _, v := range netos {
			suma += v
		}
		van, err := NPV(netos, 0)
		require.NoError(t, err)
		assert.Equal(t, suma, van)
	}
}

func TestNPVDiscountsFromYearOne(t *testing.T) {
	van, err := NPV([]float64{-100, 110}, 0.10)

	require.NoError(t, err)
	assert.InDelta(t, 0, van, 1e-9)
}

func TestNPVScenario(t *testing.T) {
	netos := []float64{-1000, 300, 300, 300, 300}
	esperado := -1000 + 300*(1/1.12+1/math.Pow(1.12, 2)+1/math.Pow(1.12, 3)+1/math.Pow(1.12, 4))

	van, err := NPV(netos, 0.12)

	require.NoError(t, err)
	assert.InDelta(t, esperado, van, 1e-9)
	assert.InDelta(t, -88.80, van, 0.01)
}

func TestNPVInvalidRates(t *testing.T) {
	for _, tasa := range []float64{-1, -1.5, math.NaN(), math.Inf(1)} {
		_, err := NPV([]float64{-100, 50, 60}, tasa)

		var rateErr *InvalidRateError
		assert.ErrorAs(t, err, &rateErr, "tasa %v", tasa)
	}
}

func TestNPVRejectsNonFiniteSeries(t *testing.T) {
	_, err := NPV([]float64{-100, math.NaN()}, 0.1)

	var integrity *DataIntegrityError
	assert.ErrorAs(t, err, &integrity)
}

func TestPresentValues(t *testing.T) {
	valores, err := PresentValues([]float64{-100, 110, 121}, 0.10)

	require.NoError(t, err)
	require.Len(t, valores, 3)
	assert.Equal(t, -100.0, valores[0])
	assert.InDelta(t, 100, valores[1], 1e-9)
	assert.InDelta(t, 100, valores[2], 1e-9)
}
