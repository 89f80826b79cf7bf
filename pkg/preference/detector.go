// Package preference implements the shopper preference classifier and the
// recommendation selector built on top of it. Both are pure: they read
// behavior counters and the static catalog and never touch session storage.
package preference

import "math"

// User preference modes. AutoDetect is the default; the other two are
// explicit overrides chosen by the shopper.
const (
	UserTypeAutoDetect = "Auto-detect"
	TypeQuality        = "Quality Priority"
	TypeValue          = "Value Priority"
	TypeUndetermined   = "Undetermined"
)

// Signal weights. Trace and discount views are the strongest signals of
// intent; organic filter views sit between a plain click and a trace view.
const (
	weightQualityClick = 2.0
	weightTraceView    = 3.0
	weightOrganicView  = 2.5
	weightPriceClick   = 2.0
	weightDiscountView = 3.0
)

// minActions is the sample size below which confidence is dampened, and
// maxConfidence the hard cap that keeps the classifier from ever
// reporting full certainty.
const (
	minActions    = 3
	maxConfidence = 95.0
)

// Behavior holds the implicit browsing signal counters for one session.
// All counters start at zero and only ever increment by one.
type Behavior struct {
	QualityClicks int `json:"quality_clicks"`
	PriceClicks   int `json:"price_clicks"`
	TraceViews    int `json:"trace_views"`
	DiscountViews int `json:"discount_views"`
	OrganicViews  int `json:"organic_views"`
}

// TotalActions is the raw number of recorded signals, used for
// small-sample dampening.
func (b Behavior) TotalActions() int {
	return b.QualityClicks + b.PriceClicks + b.TraceViews + b.DiscountViews + b.OrganicViews
}

// Detection is the classifier output. Confidence is always within
// [0, 95]. Message is only set when there is not enough data.
type Detection struct {
	Type         string  `json:"type"`
	Confidence   float64 `json:"confidence"`
	Message      string  `json:"message,omitempty"`
	QualityScore float64 `json:"quality_score"`
	ValueScore   float64 `json:"value_score"`
}

// Detect classifies a shopper as quality- or value-oriented from the
// behavior counters.
//
// Confidence is the normalized gap between the two weighted scores,
// scaled down by total_actions/3 while fewer than three signals have
// been recorded, then capped at 95. Equal nonzero scores resolve to
// Value Priority: the strict comparison favors quality only when its
// score is strictly greater.
func Detect(b Behavior) Detection {
	qualityScore := float64(b.QualityClicks)*weightQualityClick +
		float64(b.TraceViews)*weightTraceView +
		float64(b.OrganicViews)*weightOrganicView

	valueScore := float64(b.PriceClicks)*weightPriceClick +
		float64(b.DiscountViews)*weightDiscountView

	totalScore := qualityScore + valueScore
	if totalScore == 0 {
		return Detection{
			Type:       TypeUndetermined,
			Confidence: 0,
			Message:    "Not enough data. Keep browsing!",
		}
	}

	confidence := math.Abs(qualityScore-valueScore) / totalScore * 100

	if total := b.TotalActions(); total < minActions {
		confidence *= float64(total) / float64(minActions)
	}

	preferenceType := TypeValue
	if qualityScore > valueScore {
		preferenceType = TypeQuality
	}

	return Detection{
		Type:         preferenceType,
		Confidence:   math.Min(confidence, maxConfidence),
		QualityScore: qualityScore,
		ValueScore:   valueScore,
	}
}
