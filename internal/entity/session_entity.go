package entity

import (
	"freshcart-be/pkg/catalog"
	"freshcart-be/pkg/preference"
)

// Chat roles as persisted in the session transcript.
const (
	ChatRoleUser = "user"
	ChatRoleAI   = "ai"
)

// ChatMessage is a single transcript entry.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// BehaviorData carries the raw signal counters plus the cached detector
// output. DetectedType and Confidence are derived fields: they are
// recomputed from the counters after every mutation and must never be
// written independently.
type BehaviorData struct {
	preference.Behavior
	DetectedType *string `json:"detected_type"`
	Confidence   float64 `json:"confidence"`
}

// ApplyDetection refreshes the cached detector fields.
func (b *BehaviorData) ApplyDetection(det preference.Detection) {
	detected := det.Type
	b.DetectedType = &detected
	b.Confidence = det.Confidence
}

// SessionState is the unit of persistence for one shopper session. Cart
// entries are denormalized product copies in insertion order; a product
// may appear more than once.
type SessionState struct {
	UserType     string            `json:"user_type"`
	Cart         []catalog.Product `json:"cart"`
	ChatHistory  []ChatMessage     `json:"chat_history"`
	BehaviorData BehaviorData      `json:"behavior_data"`
}

// DefaultSessionState returns a fresh default state: auto-detect mode,
// empty cart and transcript, all counters zero, no cached detection.
// Callers get an independent copy on every call.
func DefaultSessionState() *SessionState {
	return &SessionState{
		UserType:     preference.UserTypeAutoDetect,
		Cart:         []catalog.Product{},
		ChatHistory:  []ChatMessage{},
		BehaviorData: BehaviorData{},
	}
}

// CartTotal sums the item prices; an empty cart totals zero.
func (s *SessionState) CartTotal() float64 {
	var total float64
	for _, p := range s.Cart {
		total += p.Price
	}
	return total
}
