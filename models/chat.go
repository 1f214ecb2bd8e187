package models

// ChatMessage is a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"` // omitted on first message
	Message   string `json:"message"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	SessionID string          `json:"session_id"`
	Reply     string          `json:"reply"`
	Bookings  []BookingRecord `json:"bookings,omitempty"`
}

// ChatSession is the per-conversation state held in the session store.
// PaymentAuthorized is the authorization fact the planner tool set is
// constructed from; flipping it takes effect on the next constructed set.
type ChatSession struct {
	Messages          []ChatMessage   `json:"messages"`
	PaymentAuthorized bool            `json:"payment_authorized"`
	CardLast4         string          `json:"card_last4,omitempty"`
	Cardholder        string          `json:"cardholder,omitempty"`
	Bookings          []BookingRecord `json:"bookings,omitempty"`
}
