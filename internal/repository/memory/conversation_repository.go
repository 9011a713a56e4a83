package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ConversationRepository hands out conversation ids for active chat
// sessions. A user keeps the same conversation id while they are
// chatting; after an hour of silence the entry expires and the next
// message starts a fresh conversation.
type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	// Default expiration of 1 hour, purge expired entries every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ConversationRepository{
		cache: c,
	}
}

// Touch returns the user's active conversation id, minting a new one if
// none exists, and resets the idle timer either way.
func (r *ConversationRepository) Touch(userID uuid.UUID) string {
	key := userID.String()
	if x, found := r.cache.Get(key); found {
		id := x.(string)
		r.cache.Set(key, id, cache.DefaultExpiration)
		return id
	}
	// Random ids; a clock-based scheme could hand two users the same
	// conversation in the same instant.
	id := "conv_" + uuid.NewString()
	r.cache.Set(key, id, cache.DefaultExpiration)
	return id
}

// End drops the user's active conversation so the next message starts a
// new one.
func (r *ConversationRepository) End(userID uuid.UUID) {
	r.cache.Delete(userID.String())
}
