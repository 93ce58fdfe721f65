package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"microlearn-agent-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationRepositorySaveGetDelete(t *testing.T) {
	repo := NewConversationRepository(time.Hour)
	conv := NewConversation(uuid.New(), time.Now())

	repo.Save(conv)
	got, ok := repo.Get(conv.ID)
	require.True(t, ok)
	assert.Same(t, conv, got)
	assert.Equal(t, 1, repo.Count())

	repo.Delete(conv.ID)
	_, ok = repo.Get(conv.ID)
	assert.False(t, ok)
	assert.True(t, conv.Closed(), "evicted conversation must be closed")
	assert.Error(t, conv.Context().Err())
}

func TestConversationRepositoryExpiry(t *testing.T) {
	repo := NewConversationRepository(10 * time.Millisecond)
	conv := NewConversation(uuid.New(), time.Now())
	repo.Save(conv)

	time.Sleep(30 * time.Millisecond)

	_, ok := repo.Get(conv.ID)
	assert.False(t, ok)
}

func TestConversationAppendAndClose(t *testing.T) {
	conv := NewConversation(uuid.New(), time.Now())

	first := entity.AgentMessage{Id: uuid.New(), Role: entity.AgentRoleAssistant, Content: "hi"}
	assert.True(t, conv.Append(first))

	msgs := conv.Messages()
	require.Len(t, msgs, 1)
	msgs[0].Content = "mutated"
	assert.Equal(t, "hi", conv.Messages()[0].Content)

	conv.Close()
	conv.Close()
	assert.False(t, conv.Append(entity.AgentMessage{Id: uuid.New()}))
	assert.Len(t, conv.Messages(), 1)
	assert.ErrorIs(t, conv.Context().Err(), context.Canceled)
}

func TestConversationSetFeedback(t *testing.T) {
	conv := NewConversation(uuid.New(), time.Now())
	id := uuid.New()
	conv.Append(entity.AgentMessage{Id: id, Role: entity.AgentRoleAssistant})

	now := time.Now()
	updated, ok := conv.SetFeedback(id, entity.FeedbackDown, now)
	require.True(t, ok)
	assert.Equal(t, entity.FeedbackDown, updated.Feedback)
	require.NotNil(t, updated.UpdatedAt)

	stored, ok := conv.Message(id)
	require.True(t, ok)
	assert.Equal(t, entity.FeedbackDown, stored.Feedback)

	_, ok = conv.SetFeedback(uuid.New(), entity.FeedbackUp, now)
	assert.False(t, ok)
}

func TestConversationConcurrentAppend(t *testing.T) {
	conv := NewConversation(uuid.New(), time.Now())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conv.Append(entity.AgentMessage{Id: uuid.New()})
		}()
	}
	wg.Wait()

	assert.Len(t, conv.Messages(), 50)
}

func TestConversationRepositoryTouch(t *testing.T) {
	repo := NewConversationRepository(time.Hour)
	conv := NewConversation(uuid.New(), time.Now())

	assert.False(t, repo.Touch(conv), "touch must not add a conversation")
	_, ok := repo.Get(conv.ID)
	assert.False(t, ok)

	repo.Save(conv)
	assert.True(t, repo.Touch(conv))

	repo.Delete(conv.ID)
	assert.False(t, repo.Touch(conv))
	_, ok = repo.Get(conv.ID)
	assert.False(t, ok, "deleted conversation must stay deleted")
	assert.Zero(t, repo.Count())
}

func TestConversationStampIsStrictlyIncreasing(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 123456789, time.UTC)
	conv := NewConversation(uuid.New(), now)

	first := conv.Stamp(now)
	second := conv.Stamp(now)
	third := conv.Stamp(now.Add(-time.Second))

	assert.Equal(t, now.Truncate(time.Microsecond), first)
	assert.Equal(t, first.Add(time.Microsecond), second)
	assert.Equal(t, second.Add(time.Microsecond), third)

	later := now.Add(time.Minute)
	assert.Equal(t, later.Truncate(time.Microsecond), conv.Stamp(later))
}
