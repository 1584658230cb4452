package model

// Message is a single conversation message, as exchanged with the caller.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}
