package llm

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when the provider answered without any text.
var ErrEmptyCompletion = errors.New("llm: empty completion")

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversational turn sent to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	// Converse sends the whole turn history; the last message is the new user utterance.
	Converse(ctx context.Context, systemPrompt string, history []Message) (string, error)
}

// CompletionModel produces a JSON document constrained by schema.
type CompletionModel interface {
	Complete(ctx context.Context, prompt string, schema Schema) (string, error)
}
