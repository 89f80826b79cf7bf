package preference

import (
	"sort"

	"freshcart-be/pkg/catalog"
)

// maxRecommendations bounds the list shown on the storefront grid.
// confidenceThreshold is the minimum auto-detected confidence required
// before the detected preference drives the ranking.
const (
	maxRecommendations  = 4
	confidenceThreshold = 50.0
)

// Recommend produces the ranked product list for a session.
//
// An explicit user type always wins. In auto-detect mode the detector
// runs on the current counters and its result is applied only at or
// above the confidence threshold; otherwise the catalog's natural order
// is returned as a neutral default. Sorting is stable, so products with
// equal scores keep their catalog order.
func Recommend(userType string, b Behavior, products []catalog.Product) []catalog.Product {
	switch userType {
	case TypeQuality:
		return rankByQuality(products)
	case TypeValue:
		return rankByDiscount(products)
	}

	det := Detect(b)
	if det.Confidence >= confidenceThreshold {
		switch det.Type {
		case TypeQuality:
			return rankByQuality(products)
		case TypeValue:
			return rankByDiscount(products)
		}
	}

	return truncate(products)
}

func rankByQuality(products []catalog.Product) []catalog.Product {
	ranked := make([]catalog.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QualityScore > ranked[j].QualityScore
	})
	return truncate(ranked)
}

func rankByDiscount(products []catalog.Product) []catalog.Product {
	ranked := make([]catalog.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DiscountFraction() > ranked[j].DiscountFraction()
	})
	return truncate(ranked)
}

func truncate(products []catalog.Product) []catalog.Product {
	if len(products) <= maxRecommendations {
		out := make([]catalog.Product, len(products))
		copy(out, products)
		return out
	}
	out := make([]catalog.Product, maxRecommendations)
	copy(out, products[:maxRecommendations])
	return out
}
