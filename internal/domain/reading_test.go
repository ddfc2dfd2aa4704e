package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPollutantReading_Validate(t *testing.T) {
	valid := PollutantReading{PM25: 25, PM10: 50, NO2: 20, CO: 1, O3: 60}

	t.Run("valid reading", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("zero values are valid", func(t *testing.T) {
		assert.NoError(t, PollutantReading{}.Validate())
	})

	t.Run("negative field rejected", func(t *testing.T) {
		r := valid
		r.PM25 = -1
		err := r.Validate()
		assert.ErrorIs(t, err, ErrInvalidReading)
		assert.Contains(t, err.Error(), "pm25")
	})

	t.Run("NaN rejected", func(t *testing.T) {
		r := valid
		r.CO = math.NaN()
		err := r.Validate()
		assert.ErrorIs(t, err, ErrInvalidReading)
		assert.Contains(t, err.Error(), "co")
	})

	t.Run("infinity rejected", func(t *testing.T) {
		r := valid
		r.O3 = math.Inf(1)
		assert.ErrorIs(t, r.Validate(), ErrInvalidReading)
	})
}

func TestPollutantReading_Features(t *testing.T) {
	r := PollutantReading{PM25: 1, PM10: 2, NO2: 3, CO: 4, O3: 5}
	assert.Equal(t, [NumFeatures]float64{1, 2, 3, 4, 5}, r.Features())
}

func TestCategory_Bounds(t *testing.T) {
	// Bands must be contiguous and exhaustive over non-negative values.
	cats := Categories()
	for i := 1; i < len(cats); i++ {
		_, prevUpper := cats[i-1].Bounds()
		lower, _ := cats[i].Bounds()
		assert.Equal(t, prevUpper, lower, "gap between %s and %s", cats[i-1], cats[i])
	}

	_, last := CategoryHazardous.Bounds()
	assert.True(t, math.IsInf(last, 1))
}
