package memory

import (
	"context"
	"sync"
	"time"

	"microlearn-agent-be/internal/entity"

	"github.com/google/uuid"
)

// Conversation is the live state of one agent chat. Requests and follow-up
// goroutines append to it concurrently, so every access goes through the mutex.
type Conversation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.RWMutex
	messages  []entity.AgentMessage
	closed    bool
	lastStamp time.Time
}

func NewConversation(userID uuid.UUID, now time.Time) *Conversation {
	ctx, cancel := context.WithCancel(context.Background())
	return &Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Context is cancelled when the conversation is closed or evicted.
// Follow-up plans run under it.
func (c *Conversation) Context() context.Context {
	return c.ctx
}

// Stamp returns now truncated to the microsecond, moved forward when needed so
// every stamp is strictly later than the previous one. Postgres keeps
// microseconds, so the stored order matches the conversation order.
func (c *Conversation) Stamp(now time.Time) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := now.Truncate(time.Microsecond)
	if !t.After(c.lastStamp) {
		t = c.lastStamp.Add(time.Microsecond)
	}
	c.lastStamp = t
	return t
}

// Append adds a message. It reports false once the conversation is closed.
func (c *Conversation) Append(msg entity.AgentMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.messages = append(c.messages, msg)
	return true
}

// Messages returns a snapshot in insertion order.
func (c *Conversation) Messages() []entity.AgentMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.AgentMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Message returns a copy of the message with the given id.
func (c *Conversation) Message(id uuid.UUID) (entity.AgentMessage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.messages {
		if m.Id == id {
			return m, true
		}
	}
	return entity.AgentMessage{}, false
}

// SetFeedback updates a message in place and returns the updated copy.
func (c *Conversation) SetFeedback(id uuid.UUID, feedback string, now time.Time) (entity.AgentMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.messages {
		if c.messages[i].Id == id {
			c.messages[i].Feedback = feedback
			c.messages[i].UpdatedAt = &now
			return c.messages[i], true
		}
	}
	return entity.AgentMessage{}, false
}

// Close cancels pending follow-ups and rejects further appends. Idempotent.
func (c *Conversation) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
}

func (c *Conversation) Closed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
