// Package catalog holds the static storefront product data: the product
// list, per-product reviews, the traceability timeline and the quick
// replenishment list. The data is read-only; callers that need to reorder
// products must work on the copy returned by Products.
package catalog

// Product is a single catalog entry. Name is the unique identifier used
// by cart and review lookups.
type Product struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	OriginalPrice     float64 `json:"original_price"`
	QualityScore      float64 `json:"quality_score"`
	StabilityScore    float64 `json:"stability_score"`
	Origin            string  `json:"origin"`
	Certification     string  `json:"certification"`
	TraceCompleteness float64 `json:"trace_completeness"`
	Category          string  `json:"category"`
	LowPesticide      bool    `json:"low_pesticide"`
}

// DiscountFraction returns (original_price - price) / original_price,
// the basis for value-priority ranking. Returns 0 when original_price
// is not positive.
func (p Product) DiscountFraction() float64 {
	if p.OriginalPrice <= 0 {
		return 0
	}
	return (p.OriginalPrice - p.Price) / p.OriginalPrice
}

var products = []Product{
	{
		Name:              "Organic Baby Spinach",
		Price:             18.9,
		OriginalPrice:     22.9,
		QualityScore:      0.95,
		StabilityScore:    0.92,
		Origin:            "Shandong Province, China",
		Certification:     "Organic Certification",
		TraceCompleteness: 0.95,
		Category:          "Vegetables",
		LowPesticide:      true,
	},
	{
		Name:              "Fresh Norwegian Salmon",
		Price:             68.0,
		OriginalPrice:     78.0,
		QualityScore:      0.91,
		StabilityScore:    0.88,
		Origin:            "Norway",
		Certification:     "MSC Certified, Fresh Import",
		TraceCompleteness: 0.90,
		Category:          "Seafood",
		LowPesticide:      true,
	},
	{
		Name:              "Free-Range Eggs (10pcs)",
		Price:             25.9,
		OriginalPrice:     28.9,
		QualityScore:      0.92,
		StabilityScore:    0.93,
		Origin:            "Jiangsu Province, China",
		Certification:     "Free-range Certified",
		TraceCompleteness: 0.85,
		Category:          "Dairy",
		LowPesticide:      true,
	},
	{
		Name:              "Premium Organic Strawberries",
		Price:             39.9,
		OriginalPrice:     49.9,
		QualityScore:      0.89,
		StabilityScore:    0.82,
		Origin:            "Yunnan Province, China",
		Certification:     "Organic Certification",
		TraceCompleteness: 0.92,
		Category:          "Fruits",
		LowPesticide:      true,
	},
	{
		Name:              "Grass-Fed Australian Beef",
		Price:             89.9,
		OriginalPrice:     98.0,
		QualityScore:      0.93,
		StabilityScore:    0.90,
		Origin:            "Victoria, Australia",
		Certification:     "Antibiotic-Free, Quality Certified",
		TraceCompleteness: 0.88,
		Category:          "Meat",
		LowPesticide:      false,
	},
	{
		Name:              "Fresh Organic Tofu",
		Price:             8.9,
		OriginalPrice:     10.9,
		QualityScore:      0.90,
		StabilityScore:    0.91,
		Origin:            "Local Producer",
		Certification:     "Non-GMO Certified",
		TraceCompleteness: 0.80,
		Category:          "Dairy",
		LowPesticide:      true,
	},
}

// Products returns a fresh copy of the catalog in its natural order.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// FindByName resolves a product by its unique name.
func FindByName(name string) (Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}
