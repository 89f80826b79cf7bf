package dto

// SessionRefreshMessage is published on the refresh topic after every
// mutation that can change the detection panel or the recommendation
// list. The websocket notifier forwards it to the session's clients.
type SessionRefreshMessage struct {
	SessionID string `json:"session_id"`
	Reason    string `json:"reason"`
}

// Refresh reasons.
const (
	RefreshReasonUserType = "user_type_changed"
	RefreshReasonSignal   = "signal_recorded"
	RefreshReasonReset    = "behavior_reset"
)
