package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/swiftstream/site/pkg/llm"
)

const SystemInstruction = "You are SwiftBot, a helpful, professional, and efficient AI assistant for SwiftStream Logistics. " +
	"You help customers with tracking queries (simulate tracking by asking for ID), shipping advice, packaging guidelines, " +
	"and general logistics questions. Keep answers concise and helpful."

const (
	FallbackEmptyReply = "I'm having trouble connecting to the logistics network right now. Please try again."
	FallbackError      = "I apologize, but I'm experiencing a temporary system error."
)

// Assistant owns the one conversational session of its lifetime.
// The session is created on the first SendMessage and reused afterwards.
// Sends are serialized so turns reach the session in call order.
type Assistant struct {
	starter     Starter
	instruction string
	now         func() time.Time

	mu      sync.Mutex
	session Session
}

func NewAssistant(starter Starter) *Assistant {
	return &Assistant{
		starter:     starter,
		instruction: SystemInstruction,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Active reports whether the session has been created.
func (a *Assistant) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil
}

// SendMessage forwards text and returns the reply. Provider failures never surface
// as errors: the reply then carries a fixed apology. Only empty input is rejected.
func (a *Assistant) SendMessage(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrValidation("message is required")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	session, err := a.sessionLocked(ctx)
	if err != nil {
		log.Warnw("chat session start failed", "error", err)
		return newMessage(RoleModel, FallbackError, a.now()), nil
	}
	reply, err := session.Send(ctx, text)
	switch {
	case errors.Is(err, llm.ErrEmptyCompletion):
		return newMessage(RoleModel, FallbackEmptyReply, a.now()), nil
	case err != nil:
		log.Warnw("chat send failed", "error", err)
		return newMessage(RoleModel, FallbackError, a.now()), nil
	case strings.TrimSpace(reply) == "":
		return newMessage(RoleModel, FallbackEmptyReply, a.now()), nil
	}
	return newMessage(RoleModel, reply, a.now()), nil
}

// sessionLocked is the create-once accessor; a.mu must be held.
func (a *Assistant) sessionLocked(ctx context.Context) (Session, error) {
	if a.session != nil {
		return a.session, nil
	}
	s, err := a.starter.Start(ctx, a.instruction)
	if err != nil {
		return nil, err
	}
	a.session = s
	return s, nil
}
