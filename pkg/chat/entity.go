package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/swiftstream/site/pkg/llm"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is a chat turn as shown to the visitor. It is never persisted.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func newMessage(role Role, text string, at time.Time) Message {
	return Message{ID: uuid.New(), Role: role, Text: text, Timestamp: at}
}

// Session is a stateful conversation with a provider.
type Session interface {
	Send(ctx context.Context, text string) (string, error)
}

// Starter opens a new Session carrying a fixed system instruction.
type Starter interface {
	Start(ctx context.Context, systemInstruction string) (Session, error)
}

// HistoryStore keeps provider-facing turns per session.
type HistoryStore interface {
	Load(ctx context.Context, sessionID string) ([]llm.Message, error)
	Append(ctx context.Context, sessionID string, msgs ...llm.Message) error
}

// ErrValidation reports unusable input.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
