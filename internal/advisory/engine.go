// Package advisory implements the AQI categorization and health guidance
// used by the prediction workflow. Both functions are pure and safe for
// concurrent use.
package advisory

import (
	"fmt"
	"math"

	"github.com/airqualityai/backend/internal/domain"
)

// breakpoints holds the inclusive upper bound of each bounded band in
// ascending order. Values above the last breakpoint are Hazardous.
var breakpoints = []struct {
	upper    float64
	category domain.Category
}{
	{50, domain.CategoryGood},
	{100, domain.CategoryModerate},
	{150, domain.CategoryUnhealthySensitive},
	{200, domain.CategoryUnhealthy},
	{300, domain.CategoryVeryUnhealthy},
}

// Classify maps a finite non-negative AQI value onto its band. Upper
// bounds belong to the lower band: 50 is Good, 300 is Very Unhealthy.
// Negative values are rejected with ErrNegativeAQI.
func Classify(aqi float64) (domain.Category, error) {
	if math.IsNaN(aqi) || math.IsInf(aqi, 0) {
		return 0, fmt.Errorf("advisory: AQI must be a finite number, got %v", aqi)
	}
	if aqi < 0 {
		return 0, fmt.Errorf("advisory: %w: %g", domain.ErrNegativeAQI, aqi)
	}

	for _, bp := range breakpoints {
		if aqi <= bp.upper {
			return bp.category, nil
		}
	}
	return domain.CategoryHazardous, nil
}

// Advise returns the advisory for a band. The backing table covers every
// band and is verified at package init, so a lookup cannot come back
// empty for a valid category.
func Advise(c domain.Category) domain.Advisory {
	adv, ok := table[c]
	if !ok {
		panic(fmt.Sprintf("advisory: no table entry for category %d", c))
	}
	return adv
}
