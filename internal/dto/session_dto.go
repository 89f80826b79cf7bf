package dto

import (
	"freshcart-be/internal/entity"
	"freshcart-be/pkg/catalog"
)

// SetUserTypeRequest switches the explicit preference override.
type SetUserTypeRequest struct {
	UserType string `json:"user_type" validate:"required,oneof=Auto-detect 'Quality Priority' 'Value Priority'"`
}

// RecordSignalRequest records one implicit browsing signal. Signal names
// outside the five recognized counters are rejected here, before the
// tracker ever sees them.
type RecordSignalRequest struct {
	Signal string `json:"signal" validate:"required,oneof=quality_clicks price_clicks trace_views discount_views organic_views"`
}

// AddToCartRequest references a product by its catalog name.
type AddToCartRequest struct {
	ProductName string `json:"product_name" validate:"required"`
}

// SendChatRequest carries one user message to the shopping assistant.
type SendChatRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

// SessionResponse is the full session view returned to the renderer.
type SessionResponse struct {
	SessionID    string               `json:"session_id"`
	UserType     string               `json:"user_type"`
	BehaviorData entity.BehaviorData  `json:"behavior_data"`
	Cart         []catalog.Product    `json:"cart"`
	CartTotal    float64              `json:"cart_total"`
	ChatHistory  []entity.ChatMessage `json:"chat_history"`
}

// DetectionResponse is returned after a signal is recorded or behavior is
// reset, so the detection panel can refresh without a second round trip.
type DetectionResponse struct {
	BehaviorData entity.BehaviorData `json:"behavior_data"`
	Message      string              `json:"message,omitempty"`
}

// RecommendationsResponse is the ranked product list, at most four items.
type RecommendationsResponse struct {
	Products []catalog.Product `json:"products"`
}

// CartResponse mirrors the cart tab: items in insertion order plus total.
type CartResponse struct {
	Items []catalog.Product `json:"items"`
	Total float64           `json:"total"`
}

// ChatResponse returns the stored user message and the generated reply.
type ChatResponse struct {
	Sent  entity.ChatMessage `json:"sent"`
	Reply entity.ChatMessage `json:"reply"`
}

// ProductTraceResponse is the traceability view for one product.
type ProductTraceResponse struct {
	ProductName       string               `json:"product_name"`
	TraceCompleteness float64              `json:"trace_completeness"`
	Timeline          []catalog.TraceStage `json:"timeline"`
	Reviews           []catalog.Review     `json:"reviews"`
}
