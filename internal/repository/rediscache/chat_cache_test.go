package rediscache

import (
	"context"
	"testing"
	"time"

	"catalog-chat-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Without a Redis client every operation must behave as a miss or a no-op so
// the chat pipeline keeps working on the database alone.
func TestChatCacheFailsOpenWithoutClient(t *testing.T) {
	cache := NewChatCache(nil, 20)
	ctx := context.Background()
	sessionId := uuid.New()

	cache.AppendMessage(ctx, sessionId, &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Role:          "user",
		Content:       "hi",
		CreatedAt:     time.Now(),
	})

	messages, ok := cache.GetRecentMessages(ctx, sessionId)
	assert.False(t, ok)
	assert.Nil(t, messages)

	cache.Invalidate(ctx, sessionId)

	var nilCache *ChatCache
	nilCache.AppendMessage(ctx, sessionId, nil)
	_, ok = nilCache.GetRecentMessages(ctx, sessionId)
	assert.False(t, ok)
}

func TestMessagesKeyFormat(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	assert.Equal(t, "chat:11111111-2222-3333-4444-555555555555:messages", messagesKey(id))
}

func TestWindowDefault(t *testing.T) {
	cache := NewChatCache(nil, 0)
	assert.Equal(t, 20, cache.window)
}
