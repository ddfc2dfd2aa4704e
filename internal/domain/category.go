package domain

import "math"

// Category is one of the six AQI bands. The bands are contiguous and
// exhaustive over non-negative AQI values; upper bounds are inclusive,
// so 50 is Good and 300 is Very Unhealthy.
type Category int

const (
	CategoryGood Category = iota
	CategoryModerate
	CategoryUnhealthySensitive
	CategoryUnhealthy
	CategoryVeryUnhealthy
	CategoryHazardous
)

// Categories returns all bands in ascending severity order.
func Categories() []Category {
	return []Category{
		CategoryGood,
		CategoryModerate,
		CategoryUnhealthySensitive,
		CategoryUnhealthy,
		CategoryVeryUnhealthy,
		CategoryHazardous,
	}
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	switch c {
	case CategoryGood:
		return "Good"
	case CategoryModerate:
		return "Moderate"
	case CategoryUnhealthySensitive:
		return "Unhealthy for Sensitive Groups"
	case CategoryUnhealthy:
		return "Unhealthy"
	case CategoryVeryUnhealthy:
		return "Very Unhealthy"
	case CategoryHazardous:
		return "Hazardous"
	}
	return "Unknown"
}

// Severity returns the styling tag used by the presentation layer.
func (c Category) Severity() string {
	switch c {
	case CategoryGood:
		return "good"
	case CategoryModerate:
		return "moderate"
	case CategoryUnhealthySensitive:
		return "unhealthy-sensitive"
	case CategoryUnhealthy:
		return "unhealthy"
	case CategoryVeryUnhealthy:
		return "very-unhealthy"
	case CategoryHazardous:
		return "hazardous"
	}
	return "unknown"
}

// Bounds returns the AQI interval covered by the category. The upper
// bound is inclusive; Hazardous is unbounded above.
func (c Category) Bounds() (lower, upper float64) {
	switch c {
	case CategoryGood:
		return 0, 50
	case CategoryModerate:
		return 50, 100
	case CategoryUnhealthySensitive:
		return 100, 150
	case CategoryUnhealthy:
		return 150, 200
	case CategoryVeryUnhealthy:
		return 200, 300
	case CategoryHazardous:
		return 300, math.Inf(1)
	}
	return 0, 0
}

// Valid reports whether c is one of the six defined bands.
func (c Category) Valid() bool {
	return c >= CategoryGood && c <= CategoryHazardous
}

func (c Category) String() string {
	return c.Label()
}
