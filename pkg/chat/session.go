package chat

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/swiftstream/site/pkg/llm"
)

// ModelStarter opens sessions on a stateless ChatModel, replaying history each turn.
type ModelStarter struct {
	model   llm.ChatModel
	history HistoryStore
	limit   int
}

// NewModelStarter keeps at most limit turns of context; limit <= 0 keeps everything.
func NewModelStarter(model llm.ChatModel, history HistoryStore, limit int) *ModelStarter {
	return &ModelStarter{model: model, history: history, limit: limit}
}

func (s *ModelStarter) Start(_ context.Context, systemInstruction string) (Session, error) {
	return &ModelSession{
		id:      uuid.NewString(),
		system:  systemInstruction,
		model:   s.model,
		history: s.history,
		limit:   s.limit,
	}, nil
}

type ModelSession struct {
	id      string
	system  string
	model   llm.ChatModel
	history HistoryStore
	limit   int
}

func (s *ModelSession) ID() string { return s.id }

// Send records the turn only when the model answered.
func (s *ModelSession) Send(ctx context.Context, text string) (string, error) {
	past, err := s.history.Load(ctx, s.id)
	if err != nil {
		return "", fmt.Errorf("load chat history: %w", err)
	}
	user := llm.Message{Role: llm.RoleUser, Content: text}
	turns := window(append(past, user), s.limit)
	reply, err := s.model.Converse(ctx, s.system, turns)
	if err != nil {
		return "", err
	}
	if err := s.history.Append(ctx, s.id, user, llm.Message{Role: llm.RoleAssistant, Content: reply}); err != nil {
		log.Warnw("chat history not saved", "session", s.id, "error", err)
	}
	return reply, nil
}

// window keeps the last limit messages and then drops anything before the
// first user message, so the context never opens with an assistant turn.
func window(turns []llm.Message, limit int) []llm.Message {
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	for len(turns) > 1 && turns[0].Role != llm.RoleUser {
		turns = turns[1:]
	}
	return turns
}

// PairLimit rounds a stored-message cap down to whole user/assistant pairs.
// Stores trim with it so their oldest entry is always a user turn.
func PairLimit(max int) int {
	if max <= 0 {
		return max
	}
	if max < 2 {
		return 2
	}
	return max - max%2
}
