package memory

import (
	"time"

	"catalog-chat-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionCache accelerates chat session lookups so the hot path skips a DB
// round trip. The database remains the source of truth.
type SessionCache struct {
	cache *cache.Cache
}

func NewSessionCache() *SessionCache {
	// Default expiration of 1 hour, purge of expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionCache{
		cache: c,
	}
}

func (r *SessionCache) Save(session *entity.ChatSession) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
}

func (r *SessionCache) Get(sessionID uuid.UUID) (*entity.ChatSession, bool) {
	if x, found := r.cache.Get(sessionID.String()); found {
		return x.(*entity.ChatSession), true
	}
	return nil, false
}

func (r *SessionCache) Delete(sessionID uuid.UUID) {
	r.cache.Delete(sessionID.String())
}
