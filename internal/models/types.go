package models

// ChatRequest is the JSON body posted by the chat client.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatResponse is the sole contract returned to the client. Error is
// populated only for internal diagnostics; Reply is always usable as-is
// in the conversation, even when the pipeline degraded.
type ChatResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error,omitempty"`
}

// Intent is the classification label assigned to a sanitized message.
// Classification is total: every message maps to exactly one intent,
// with IntentGeneral as the catch-all.
type Intent string

const (
	IntentItinerary  Intent = "itinerary"
	IntentContact    Intent = "contact"
	IntentSeasons    Intent = "seasons"
	IntentActivities Intent = "activities"
	IntentWeather    Intent = "weather"
	IntentGeneral    Intent = "general"
)

// ClassifiedRequest is server-internal and exists only for the duration
// of one request.
type ClassifiedRequest struct {
	SanitizedText string
	Intent        Intent
}
