package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftstream/site/pkg/llm"
)

type recordingModel struct {
	calls   [][]llm.Message
	systems []string
	replies []string
	err     error
}

func (m *recordingModel) Converse(_ context.Context, systemPrompt string, history []llm.Message) (string, error) {
	m.calls = append(m.calls, append([]llm.Message(nil), history...))
	m.systems = append(m.systems, systemPrompt)
	if m.err != nil {
		return "", m.err
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]
	return reply, nil
}

func TestModelSessionCarriesPriorTurns(t *testing.T) {
	model := &recordingModel{replies: []string{"Hello!", "Ocean is cheapest."}}
	history := NewMemoryHistory(0)
	sess, err := NewModelStarter(model, history, 0).Start(context.Background(), "persona")
	require.NoError(t, err)

	_, err = sess.Send(context.Background(), "hi")
	require.NoError(t, err)
	reply, err := sess.Send(context.Background(), "cheapest mode?")
	require.NoError(t, err)
	assert.Equal(t, "Ocean is cheapest.", reply)

	require.Len(t, model.calls, 2)
	assert.Equal(t, []string{"persona", "persona"}, model.systems)
	assert.Equal(t, []llm.Message{
		{Role: llm.RoleUser, Content: "hi"},
		{Role: llm.RoleAssistant, Content: "Hello!"},
		{Role: llm.RoleUser, Content: "cheapest mode?"},
	}, model.calls[1])
}

func TestModelSessionDropsFailedTurns(t *testing.T) {
	model := &recordingModel{err: errors.New("timeout")}
	history := NewMemoryHistory(0)
	sess, err := NewModelStarter(model, history, 0).Start(context.Background(), "persona")
	require.NoError(t, err)

	_, err = sess.Send(context.Background(), "hi")
	require.Error(t, err)

	stored, err := history.Load(context.Background(), sess.(*ModelSession).ID())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestModelSessionLimitsContext(t *testing.T) {
	model := &recordingModel{replies: []string{"a", "b", "c"}}
	sess, err := NewModelStarter(model, NewMemoryHistory(0), 3).Start(context.Background(), "")
	require.NoError(t, err)

	for _, q := range []string{"q1", "q2", "q3"} {
		_, err := sess.Send(context.Background(), q)
		require.NoError(t, err)
	}
	last := model.calls[2]
	require.Len(t, last, 3)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "q2"}, last[0])
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "q3"}, last[2])
}

func TestMemoryHistoryTrims(t *testing.T) {
	h := NewMemoryHistory(2)
	ctx := context.Background()
	require.NoError(t, h.Append(ctx, "s", llm.Message{Content: "1"}, llm.Message{Content: "2"}, llm.Message{Content: "3"}))

	got, err := h.Load(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, []llm.Message{{Content: "2"}, {Content: "3"}}, got)

	other, err := h.Load(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestModelSessionEvenLimitStartsWithUser(t *testing.T) {
	model := &recordingModel{replies: []string{"a1", "a2", "a3"}}
	sess, err := NewModelStarter(model, NewMemoryHistory(0), 4).Start(context.Background(), "")
	require.NoError(t, err)

	for _, q := range []string{"q1", "q2", "q3"} {
		_, err := sess.Send(context.Background(), q)
		require.NoError(t, err)
	}
	assert.Equal(t, []llm.Message{
		{Role: llm.RoleUser, Content: "q2"},
		{Role: llm.RoleAssistant, Content: "a2"},
		{Role: llm.RoleUser, Content: "q3"},
	}, model.calls[2])
}

func TestMemoryHistoryKeepsWholePairs(t *testing.T) {
	h := NewMemoryHistory(3)
	ctx := context.Background()
	for _, q := range []string{"q1", "q2"} {
		require.NoError(t, h.Append(ctx, "s",
			llm.Message{Role: llm.RoleUser, Content: q},
			llm.Message{Role: llm.RoleAssistant, Content: "re " + q}))
	}

	got, err := h.Load(ctx, "s")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, llm.RoleUser, got[0].Role)
	assert.Equal(t, "q2", got[0].Content)
}

func TestPairLimit(t *testing.T) {
	assert.Equal(t, 0, PairLimit(0))
	assert.Equal(t, 2, PairLimit(1))
	assert.Equal(t, 2, PairLimit(3))
	assert.Equal(t, 20, PairLimit(20))
}

type failingHistory struct{ *MemoryHistory }

func (failingHistory) Append(context.Context, string, ...llm.Message) error {
	return errors.New("redis: connection refused")
}

func TestModelSessionReturnsReplyWhenHistoryNotSaved(t *testing.T) {
	model := &recordingModel{replies: []string{"Your parcel is in transit."}}
	history := failingHistory{NewMemoryHistory(0)}
	sess, err := NewModelStarter(model, history, 0).Start(context.Background(), "")
	require.NoError(t, err)

	reply, err := sess.Send(context.Background(), "where is SW-12345?")
	require.NoError(t, err)
	assert.Equal(t, "Your parcel is in transit.", reply)
}
