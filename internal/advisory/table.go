package advisory

import (
	"fmt"

	"github.com/airqualityai/backend/internal/domain"
)

// table maps each AQI band to its fixed advisory. The wording is a
// product decision; what matters is that the mapping is total and stable.
var table = map[domain.Category]domain.Advisory{
	domain.CategoryGood: {
		Description: "Air quality is satisfactory",
		Recommendations: []string{
			"Perfect for outdoor activities and exercise",
			"No restrictions needed",
			"Great day for children to play outside",
		},
	},
	domain.CategoryModerate: {
		Description: "Air quality is acceptable",
		Recommendations: []string{
			"Generally acceptable for most people",
			"Sensitive individuals should reduce prolonged exertion",
			"Stay hydrated if exercising outdoors",
		},
	},
	domain.CategoryUnhealthySensitive: {
		Description: "Sensitive groups may be affected",
		Recommendations: []string{
			"Sensitive groups should reduce outdoor activities",
			"Older adults and children should limit exertion",
			"Consider moving activities indoors",
		},
	},
	domain.CategoryUnhealthy: {
		Description: "Everyone may be affected",
		Recommendations: []string{
			"Everyone should reduce outdoor activities",
			"Avoid strenuous exercise outdoors",
			"Wear masks if going outside",
		},
	},
	domain.CategoryVeryUnhealthy: {
		Description: "Health alert",
		Recommendations: []string{
			"Avoid all outdoor activities",
			"Stay indoors with windows closed",
			"Use air purifiers",
		},
	},
	domain.CategoryHazardous: {
		Description: "Health warning",
		Recommendations: []string{
			"Health emergency - stay indoors",
			"Cancel all outdoor activities",
			"Seek medical help if symptoms appear",
		},
	},
}

func init() {
	// An unhandled category must be impossible, not an empty list.
	for _, c := range domain.Categories() {
		adv, ok := table[c]
		if !ok {
			panic(fmt.Sprintf("advisory: table is missing category %q", c.Label()))
		}
		if len(adv.Recommendations) == 0 {
			panic(fmt.Sprintf("advisory: category %q has no recommendations", c.Label()))
		}
		adv.Category = c
		adv.Label = c.Label()
		adv.Severity = c.Severity()
		table[c] = adv
	}
}
