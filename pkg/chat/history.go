package chat

import (
	"context"
	"sync"

	"github.com/swiftstream/site/pkg/llm"
)

// MemoryHistory is an in-process HistoryStore.
type MemoryHistory struct {
	mu       sync.Mutex
	max      int
	sessions map[string][]llm.Message
}

// NewMemoryHistory keeps the last max messages per session, rounded down to
// whole pairs; max <= 0 keeps all.
func NewMemoryHistory(max int) *MemoryHistory {
	return &MemoryHistory{max: PairLimit(max), sessions: make(map[string][]llm.Message)}
}

func (h *MemoryHistory) Load(_ context.Context, sessionID string) ([]llm.Message, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	src := h.sessions[sessionID]
	out := make([]llm.Message, len(src))
	copy(out, src)
	return out, nil
}

func (h *MemoryHistory) Append(_ context.Context, sessionID string, msgs ...llm.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	hist := append(h.sessions[sessionID], msgs...)
	if h.max > 0 && len(hist) > h.max {
		hist = append([]llm.Message(nil), hist[len(hist)-h.max:]...)
	}
	h.sessions[sessionID] = hist
	return nil
}
