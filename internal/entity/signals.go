package entity

// Recognized behavior signal names. These match the JSON counter keys in
// the persisted blob; anything else is a caller contract violation.
const (
	SignalQualityClicks = "quality_clicks"
	SignalPriceClicks   = "price_clicks"
	SignalTraceViews    = "trace_views"
	SignalDiscountViews = "discount_views"
	SignalOrganicViews  = "organic_views"
)
