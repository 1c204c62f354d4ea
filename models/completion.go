package models

// Roles of the messages in a chat-completion conversation.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionMessage is one role-tagged turn of a completion conversation.
type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest describes a single call to the completion API.
type CompletionRequest struct {
	// Model is the provider model identifier (e.g. "llama-3.1-8b-instant").
	Model string

	// Messages is the role-tagged conversation sent to the model.
	Messages []CompletionMessage

	// Temperature overrides the provider default when non-nil.
	Temperature *float64

	// JSONMode asks the provider to return a single JSON object only.
	JSONMode bool
}
