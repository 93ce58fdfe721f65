package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type ConversationRepository struct {
	cache *cache.Cache
}

// NewConversationRepository keeps conversations for ttl after their last
// activity and purges expired ones every 10 minutes. Evicted conversations
// are closed so their follow-ups stop.
func NewConversationRepository(ttl time.Duration) *ConversationRepository {
	c := cache.New(ttl, 10*time.Minute)
	c.OnEvicted(func(_ string, v interface{}) {
		if conv, ok := v.(*Conversation); ok {
			conv.Close()
		}
	})
	return &ConversationRepository{
		cache: c,
	}
}

// Save stores the conversation and resets its expiry.
func (r *ConversationRepository) Save(conv *Conversation) {
	r.cache.Set(conv.ID.String(), conv, cache.DefaultExpiration)
}

// Touch resets the expiry of a stored conversation. It reports false, and
// stores nothing, when the conversation was deleted or has expired.
func (r *ConversationRepository) Touch(conv *Conversation) bool {
	return r.cache.Replace(conv.ID.String(), conv, cache.DefaultExpiration) == nil
}

func (r *ConversationRepository) Get(id uuid.UUID) (*Conversation, bool) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*Conversation), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(id uuid.UUID) {
	r.cache.Delete(id.String())
}

func (r *ConversationRepository) Count() int {
	return r.cache.ItemCount()
}
