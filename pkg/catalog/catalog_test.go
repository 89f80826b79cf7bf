package catalog

import (
	"math"
	"testing"
)

func TestDiscountFraction(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    float64
	}{
		{
			name:    "spinach discount",
			product: Product{Price: 18.9, OriginalPrice: 22.9},
			want:    (22.9 - 18.9) / 22.9,
		},
		{
			name:    "no original price",
			product: Product{Price: 10},
			want:    0,
		},
		{
			name:    "no discount",
			product: Product{Price: 10, OriginalPrice: 10},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.DiscountFraction(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DiscountFraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindByName(t *testing.T) {
	p, ok := FindByName("Fresh Norwegian Salmon")
	if !ok {
		t.Fatal("expected salmon to resolve")
	}
	if p.Price != 68.0 {
		t.Errorf("Price = %v, want 68.0", p.Price)
	}

	if _, ok := FindByName("Imaginary Durian"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestReviewsUnknownNameIsEmptyNotNil(t *testing.T) {
	rs := Reviews("Imaginary Durian")
	if rs == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(rs) != 0 {
		t.Errorf("len = %d, want 0", len(rs))
	}
}

// TestProductsReturnsCopy guards against callers reordering the shared
// catalog through the returned slice.
func TestProductsReturnsCopy(t *testing.T) {
	first := Products()
	first[0], first[1] = first[1], first[0]

	again := Products()
	if again[0].Name != "Organic Baby Spinach" {
		t.Errorf("catalog order changed: first product is %q", again[0].Name)
	}
}
