package advisory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airqualityai/backend/internal/domain"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		aqi  float64
		want domain.Category
	}{
		{"zero", 0, domain.CategoryGood},
		{"mid good", 25, domain.CategoryGood},
		{"good upper bound inclusive", 50, domain.CategoryGood},
		{"just above good", 50.1, domain.CategoryModerate},
		{"moderate upper bound inclusive", 100, domain.CategoryModerate},
		{"just above moderate", 100.1, domain.CategoryUnhealthySensitive},
		{"sensitive upper bound inclusive", 150, domain.CategoryUnhealthySensitive},
		{"just above sensitive", 150.1, domain.CategoryUnhealthy},
		{"unhealthy upper bound inclusive", 200, domain.CategoryUnhealthy},
		{"just above unhealthy", 200.1, domain.CategoryVeryUnhealthy},
		{"very unhealthy upper bound inclusive", 300, domain.CategoryVeryUnhealthy},
		{"just above very unhealthy", 300.001, domain.CategoryHazardous},
		{"hazardous", 301, domain.CategoryHazardous},
		{"extreme", 1e6, domain.CategoryHazardous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.aqi)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		got, err := Classify(150)
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryUnhealthySensitive, got)
	}
}

func TestClassify_RejectsNegative(t *testing.T) {
	_, err := Classify(-0.1)
	assert.ErrorIs(t, err, domain.ErrNegativeAQI)
}

func TestClassify_RejectsNonFinite(t *testing.T) {
	_, err := Classify(math.NaN())
	assert.Error(t, err)

	_, err = Classify(math.Inf(1))
	assert.Error(t, err)
}

func TestAdvise_CoversAllCategories(t *testing.T) {
	for _, c := range domain.Categories() {
		t.Run(c.Label(), func(t *testing.T) {
			adv := Advise(c)

			assert.Equal(t, c, adv.Category)
			assert.Equal(t, c.Label(), adv.Label)
			assert.Equal(t, c.Severity(), adv.Severity)
			assert.NotEmpty(t, adv.Description)
			assert.NotEmpty(t, adv.Recommendations)
		})
	}
}

func TestAdvise_Deterministic(t *testing.T) {
	first := Advise(domain.CategoryHazardous)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Advise(domain.CategoryHazardous))
	}
}
