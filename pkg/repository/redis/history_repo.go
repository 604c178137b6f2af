package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/swiftstream/site/pkg/chat"
	"github.com/swiftstream/site/pkg/llm"
)

const (
	historyTTL    = 24 * time.Hour
	historyPrefix = "chat:history:"
)

// HistoryRepository implements chat.HistoryStore on a Redis list per session.
type HistoryRepository struct {
	rdb *goredis.Client
	max int
}

var _ chat.HistoryStore = (*HistoryRepository)(nil)

// NewHistoryRepository keeps the last max messages of each session, rounded
// down to whole pairs; max <= 0 keeps all.
func NewHistoryRepository(rdb *goredis.Client, max int) *HistoryRepository {
	return &HistoryRepository{rdb: rdb, max: chat.PairLimit(max)}
}

func (r *HistoryRepository) key(sessionID string) string {
	return historyPrefix + sessionID
}

func (r *HistoryRepository) Load(ctx context.Context, sessionID string) ([]llm.Message, error) {
	items, err := r.rdb.LRange(ctx, r.key(sessionID), 0, -1).Result()
	if errors.Is(err, goredis.Nil) {
		return []llm.Message{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	out := make([]llm.Message, 0, len(items))
	for _, it := range items {
		var m llm.Message
		if err := json.Unmarshal([]byte(it), &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chat message: %w", err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *HistoryRepository) Append(ctx context.Context, sessionID string, msgs ...llm.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	values := make([]any, 0, len(msgs))
	for _, m := range msgs {
		b, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to marshal chat message: %w", err)
		}
		values = append(values, string(b))
	}
	key := r.key(sessionID)
	_, err := r.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.RPush(ctx, key, values...)
		if r.max > 0 {
			p.LTrim(ctx, key, int64(-r.max), -1)
		}
		p.Expire(ctx, key, historyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save chat history: %w", err)
	}
	return nil
}
