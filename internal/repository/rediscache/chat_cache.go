package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-chat-be/internal/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = time.Hour

// ChatCache keeps the recent-message window of each session in Redis so the
// prompt builder does not hit the database on every turn. All operations fail
// open: a Redis error reads as a cache miss and writes are best effort.
type ChatCache struct {
	client *redis.Client
	window int
}

func NewChatCache(client *redis.Client, window int) *ChatCache {
	if window <= 0 {
		window = 20
	}
	return &ChatCache{
		client: client,
		window: window,
	}
}

func messagesKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("chat:%s:messages", sessionID)
}

// AppendMessage pushes a turn onto the session's history list and trims it to
// the configured window.
func (c *ChatCache) AppendMessage(ctx context.Context, sessionID uuid.UUID, message *entity.ChatMessage) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		return
	}

	key := messagesKey(sessionID)
	pipe := c.client.Pipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(c.window-1))
	pipe.Expire(ctx, key, defaultTTL)
	_, _ = pipe.Exec(ctx)
}

// GetRecentMessages returns the cached window oldest-first, or (nil, false)
// on a miss.
func (c *ChatCache) GetRecentMessages(ctx context.Context, sessionID uuid.UUID) ([]*entity.ChatMessage, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.LRange(ctx, messagesKey(sessionID), 0, int64(c.window-1)).Result()
	if err != nil || len(raw) == 0 {
		return nil, false
	}

	// LPUSH stores newest-first; reverse into chronological order.
	messages := make([]*entity.ChatMessage, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var msg entity.ChatMessage
		if err := json.Unmarshal([]byte(raw[i]), &msg); err != nil {
			return nil, false
		}
		messages = append(messages, &msg)
	}
	return messages, true
}

// Invalidate drops the cached window, e.g. when a session is deleted.
func (c *ChatCache) Invalidate(ctx context.Context, sessionID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, messagesKey(sessionID)).Err()
}
