package catalog

// TraceStage is one step of the supply-chain timeline shown on the
// traceability view. The timeline is the same for every product in the
// demo catalog; only the completeness score differs per product.
type TraceStage struct {
	Stage    string `json:"stage"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Details  string `json:"details"`
}

// QuickItem is an entry of the static quick replenishment list.
type QuickItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var traceTimeline = []TraceStage{
	{Stage: "Origin", Location: "Certified Farm", Date: "2024-12-01", Status: "Verified", Details: "Harvested under certified standard"},
	{Stage: "Processing", Location: "Central Processing Facility", Date: "2024-12-02", Status: "Verified", Details: "QC & packaging completed"},
	{Stage: "Cold Chain Transport", Location: "Regional Distribution Center", Date: "2024-12-03", Status: "Verified", Details: "Temperature 2-4°C maintained"},
	{Stage: "Final Mile Delivery", Location: "Local Warehouse", Date: "2024-12-04", Status: "Verified", Details: "Delivered within freshness window"},
}

var quickReplenish = []QuickItem{
	{Name: "Organic Milk (1L)", Price: 16.8},
	{Name: "Lettuce (1pc)", Price: 8.9},
	{Name: "Fresh Tofu", Price: 5.8},
}

// TraceTimeline returns the static supply-chain timeline.
func TraceTimeline() []TraceStage {
	out := make([]TraceStage, len(traceTimeline))
	copy(out, traceTimeline)
	return out
}

// QuickReplenish returns the static reorder suggestions.
func QuickReplenish() []QuickItem {
	out := make([]QuickItem, len(quickReplenish))
	copy(out, quickReplenish)
	return out
}
