package models

// Message types understood by the message endpoint. Each request carries a
// type discriminator and gets exactly one response.
const (
	MessagePing           = "PING"
	MessageGetState       = "GET_STATE"
	MessageToggleLabels   = "TOGGLE_LABELS"
	MessageHideAIResults  = "HIDE_AI_RESULTS"
	MessageShowAllResults = "SHOW_ALL_RESULTS"
)

// Message is one request to the engine.
type Message struct {
	Type    string `json:"type"`
	Enabled *bool  `json:"enabled,omitempty"` // TOGGLE_LABELS payload
}

// PongResponse answers PING.
type PongResponse struct {
	Pong bool `json:"pong"`
}

// StateResponse is the read-only snapshot answering GET_STATE.
type StateResponse struct {
	LabelsEnabled  bool `json:"labelsEnabled"`
	HiddenCount    int  `json:"hiddenCount"`
	IsGoogleSearch bool `json:"isGoogleSearch"`
}

// SuccessResponse answers TOGGLE_LABELS and SHOW_ALL_RESULTS.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HiddenCountResponse answers HIDE_AI_RESULTS.
type HiddenCountResponse struct {
	HiddenCount int `json:"hiddenCount"`
}

// ErrorResponse answers any unknown message type.
type ErrorResponse struct {
	Error string `json:"error"`
}
