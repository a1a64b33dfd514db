package cachepub

import "github.com/CarbonROM/tribble-tracker/internal/models"

// Cache key namespace. These exact shapes are load-bearing: the read path
// and any out-of-process consumers look entries up by them.
//
//	main                 rendered summary page
//	popular/<dimension>  popularity rollup for one dimension
//	<dimension>/<value>  breakdown block for one dimension value
const KeyMain = "main"

// KeyPopular derives the cache key for a dimension's popularity rollup.
func KeyPopular(dimension models.Dimension) string {
	return "popular/" + dimension.String()
}

// KeyBreakdown derives the cache key for one dimension value's breakdown.
// The value is the raw observed field value, untransformed.
func KeyBreakdown(dimension models.Dimension, value string) string {
	return dimension.String() + "/" + value
}
