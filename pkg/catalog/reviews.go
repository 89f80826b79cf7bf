package catalog

// Review is a single customer review attached to a product by name.
type Review struct {
	User     string `json:"user"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
	Verified bool   `json:"verified"`
}

var reviews = map[string][]Review{
	"Organic Baby Spinach": {
		{User: "Sarah M.", Rating: 5, Comment: "Super fresh and crisp!", Date: "2024-12-05", Verified: true},
		{User: "David K.", Rating: 4, Comment: "Great quality. Will buy again.", Date: "2024-12-03", Verified: true},
	},
	"Fresh Norwegian Salmon": {
		{User: "Linda T.", Rating: 5, Comment: "Excellent freshness.", Date: "2024-12-06", Verified: true},
	},
	"Free-Range Eggs (10pcs)": {
		{User: "Mike R.", Rating: 4, Comment: "Clean and reliable quality.", Date: "2024-12-02", Verified: true},
	},
	"Premium Organic Strawberries": {
		{User: "Amy W.", Rating: 4, Comment: "Sweet but a bit delicate.", Date: "2024-12-07", Verified: true},
	},
	"Grass-Fed Australian Beef": {
		{User: "Kevin L.", Rating: 4, Comment: "Good meat, cooks well.", Date: "2024-12-08", Verified: true},
	},
	"Fresh Organic Tofu": {
		{User: "Zoe H.", Rating: 5, Comment: "Very fresh tofu.", Date: "2024-12-04", Verified: true},
	},
}

// Reviews returns the review list for a product name. An unknown name
// yields an empty list, never an error.
func Reviews(name string) []Review {
	rs, ok := reviews[name]
	if !ok {
		return []Review{}
	}
	out := make([]Review, len(rs))
	copy(out, rs)
	return out
}
