package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"catalog-chat-be/internal/constant"
	"catalog-chat-be/internal/dto"
	"catalog-chat-be/internal/model"
	"catalog-chat-be/internal/repository/memory"
	"catalog-chat-be/internal/repository/rediscache"
	"catalog-chat-be/internal/repository/unitofwork"
	"catalog-chat-be/internal/service"
	"catalog-chat-be/pkg/llm/mock"
	"catalog-chat-be/pkg/sqlguard"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newChatTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:chat_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.Category{},
		&model.Brand{},
		&model.Product{},
	))

	seedSQL := []string{
		`INSERT INTO categories (id, name, slug, is_active) VALUES (1, 'Electronics', 'electronics', true)`,
		`INSERT INTO brands (id, name, slug, is_active) VALUES (1, 'Apple', 'apple', true)`,
		`INSERT INTO products (id, name, brand_id, category_id, price, stock, rating, sku, is_active)
		 VALUES (1, 'iPhone 15 Pro', 1, 1, 999.99, 50, 4.7, 'APL-IPH15P-001', true)`,
		`INSERT INTO products (id, name, brand_id, category_id, price, stock, rating, sku, is_active)
		 VALUES (2, 'MacBook Air M3', 1, 1, 1299.99, 25, 4.8, 'APL-MBA-M3-001', true)`,
	}
	for _, stmt := range seedSQL {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func newChatService(t *testing.T, db *gorm.DB, provider *mock.MockProvider) service.IChatService {
	t.Helper()
	return newChatServiceWindow(t, db, provider, 30*time.Second, 20)
}

func newChatServiceWindow(t *testing.T, db *gorm.DB, provider *mock.MockProvider, llmTimeout time.Duration, window int) service.IChatService {
	t.Helper()
	return service.NewChatService(
		unitofwork.NewRepositoryFactory(db),
		provider,
		sqlguard.NewExecutor(db, sqlguard.CatalogTables, 5*time.Second, 100),
		memory.NewSessionCache(),
		rediscache.NewChatCache(nil, window),
		nopLogger{},
		llmTimeout,
		"SQLite",
		10,
		window,
	)
}

func TestProcessChatRunsGeneratedQuery(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider(
		"```sql\nSELECT name, price FROM products ORDER BY price\n```",
		"The cheapest product is the iPhone 15 Pro at $999.99.",
	)
	svc := newChatService(t, db, provider)
	userId := uuid.New()

	resp, err := svc.ProcessChat(context.Background(), userId, &dto.ProcessChatRequest{
		Message: "What is the cheapest product?",
	})
	require.NoError(t, err)

	assert.True(t, resp.CreatedNewChat)
	assert.Equal(t, "The cheapest product is the iPhone 15 Pro at $999.99.", resp.Reply)
	assert.Equal(t, "SELECT name, price FROM products ORDER BY price", resp.GeneratedSQL)
	require.NotNil(t, resp.QueryResult)
	assert.Equal(t, 2, resp.QueryResult.RowCount)
	assert.False(t, resp.Degraded)

	// Both turns must be persisted.
	var count int64
	require.NoError(t, db.Model(&model.ChatMessage{}).
		Where("chat_session_id = ?", resp.ChatSessionId).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// The assistant turn carries the SQL and its result.
	var assistant model.ChatMessage
	require.NoError(t, db.
		Where("chat_session_id = ? AND role = ?", resp.ChatSessionId, constant.ChatMessageRoleAssistant).
		First(&assistant).Error)
	assert.Equal(t, resp.GeneratedSQL, assistant.GeneratedSQL)
	assert.Contains(t, assistant.SQLResult, "iPhone 15 Pro")
}

func TestProcessChatConversationalReply(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider("I can help you explore the catalog. What are you looking for?")
	svc := newChatService(t, db, provider)

	resp, err := svc.ProcessChat(context.Background(), uuid.New(), &dto.ProcessChatRequest{
		Message: "Hello!",
	})
	require.NoError(t, err)

	assert.Equal(t, "I can help you explore the catalog. What are you looking for?", resp.Reply)
	assert.Empty(t, resp.GeneratedSQL)
	assert.Nil(t, resp.QueryResult)
	assert.False(t, resp.Degraded)
}

func TestProcessChatDegradesWhenProviderFails(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider()
	provider.Err = errors.New("connection refused")
	svc := newChatService(t, db, provider)

	resp, err := svc.ProcessChat(context.Background(), uuid.New(), &dto.ProcessChatRequest{
		Message: "What laptops do you have?",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.DegradedReply, resp.Reply)
	assert.True(t, resp.Degraded)
	assert.Equal(t, "llm_unavailable", resp.DegradedReason)

	// The user turn survives the provider failure, and the degraded reply is
	// recorded too.
	var count int64
	require.NoError(t, db.Model(&model.ChatMessage{}).
		Where("chat_session_id = ?", resp.ChatSessionId).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestProcessChatDegradesOnProviderTimeout(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider("never delivered")
	provider.Delay = 5 * time.Second
	svc := newChatServiceWindow(t, db, provider, 50*time.Millisecond, 20)

	start := time.Now()
	resp, err := svc.ProcessChat(context.Background(), uuid.New(), &dto.ProcessChatRequest{
		Message: "Any headphones in stock?",
	})
	elapsed := time.Since(start)
	require.NoError(t, err)

	// The turn must come back well before the provider's delay elapses.
	assert.Less(t, elapsed, 2*time.Second)
	assert.Equal(t, constant.DegradedReply, resp.Reply)
	assert.True(t, resp.Degraded)
	assert.Equal(t, "llm_unavailable", resp.DegradedReason)

	var count int64
	require.NoError(t, db.Model(&model.ChatMessage{}).
		Where("chat_session_id = ?", resp.ChatSessionId).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestProcessChatRejectsUnsafeSQL(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider("```sql\nSELECT * FROM users\n```")
	svc := newChatService(t, db, provider)

	resp, err := svc.ProcessChat(context.Background(), uuid.New(), &dto.ProcessChatRequest{
		Message: "Show me all user accounts",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.QueryRejectedReply, resp.Reply)
	assert.True(t, resp.Degraded)
	assert.Equal(t, "query_rejected", resp.DegradedReason)
	assert.Equal(t, "SELECT * FROM users", resp.GeneratedSQL)
	assert.Nil(t, resp.QueryResult)
}

func TestProcessChatTitleFromFirstMessage(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider("Sure!")
	svc := newChatService(t, db, provider)

	longMessage := strings.Repeat("What products do you sell? ", 10)
	resp, err := svc.ProcessChat(context.Background(), uuid.New(), &dto.ProcessChatRequest{
		Message: longMessage,
	})
	require.NoError(t, err)

	var sess model.ChatSession
	require.NoError(t, db.First(&sess, "id = ?", resp.ChatSessionId).Error)
	assert.LessOrEqual(t, len(sess.Title), constant.SessionTitleMaxLen)
	assert.True(t, strings.HasSuffix(sess.Title, "..."))
}

func TestProcessChatContinuesExistingSession(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider("First reply", "Second reply")
	svc := newChatService(t, db, provider)
	userId := uuid.New()

	first, err := svc.ProcessChat(context.Background(), userId, &dto.ProcessChatRequest{
		Message: "Hello",
	})
	require.NoError(t, err)

	second, err := svc.ProcessChat(context.Background(), userId, &dto.ProcessChatRequest{
		ChatSessionId: &first.ChatSessionId,
		Message:       "Tell me more",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ChatSessionId, second.ChatSessionId)
	assert.False(t, second.CreatedNewChat)

	// The second SQL-generation call must include the earlier turns.
	require.NotEmpty(t, provider.Calls)
	lastCall := provider.Calls[len(provider.Calls)-1]
	var sawFirstTurn bool
	for _, msg := range lastCall {
		if msg.Content == "Hello" {
			sawFirstTurn = true
		}
	}
	assert.True(t, sawFirstTurn, "history should carry prior turns into the prompt")
}

func TestProcessChatBumpsSessionActivity(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider("First reply", "Second reply")
	svc := newChatService(t, db, provider)
	userId := uuid.New()

	first, err := svc.ProcessChat(context.Background(), userId, &dto.ProcessChatRequest{
		Message: "Hello",
	})
	require.NoError(t, err)

	var before model.ChatSession
	require.NoError(t, db.First(&before, "id = ?", first.ChatSessionId).Error)

	time.Sleep(20 * time.Millisecond)

	_, err = svc.ProcessChat(context.Background(), userId, &dto.ProcessChatRequest{
		ChatSessionId: &first.ChatSessionId,
		Message:       "Still there?",
	})
	require.NoError(t, err)

	var after model.ChatSession
	require.NoError(t, db.First(&after, "id = ?", first.ChatSessionId).Error)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt),
		"appending a message should refresh the session's updated_at")
}

func TestGetAllSessionsOrdersByActivity(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider("reply")
	svc := newChatService(t, db, provider)
	userId := uuid.New()

	older, err := svc.CreateSession(context.Background(), userId, &dto.CreateSessionRequest{Title: "older"})
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	_, err = svc.CreateSession(context.Background(), userId, &dto.CreateSessionRequest{Title: "newer"})
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	// Messaging the older session makes it the most recently active.
	_, err = svc.ProcessChat(context.Background(), userId, &dto.ProcessChatRequest{
		ChatSessionId: &older.Id,
		Message:       "back to this one",
	})
	require.NoError(t, err)

	sessions, err := svc.GetAllSessions(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "older", sessions[0].Title)
	assert.Equal(t, "newer", sessions[1].Title)
}

func TestHistoryWindowBoundsPrompt(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider("reply one", "reply two", "reply three")
	svc := newChatServiceWindow(t, db, provider, 30*time.Second, 2)
	userId := uuid.New()

	first, err := svc.ProcessChat(context.Background(), userId, &dto.ProcessChatRequest{
		Message: "alpha question",
	})
	require.NoError(t, err)

	for _, msg := range []string{"beta question", "gamma question"} {
		_, err = svc.ProcessChat(context.Background(), userId, &dto.ProcessChatRequest{
			ChatSessionId: &first.ChatSessionId,
			Message:       msg,
		})
		require.NoError(t, err)
	}

	// The last prompt carries only the two most recent turns.
	require.NotEmpty(t, provider.Calls)
	lastCall := provider.Calls[len(provider.Calls)-1]
	var sawAlpha, sawBeta bool
	for _, msg := range lastCall {
		if msg.Content == "alpha question" {
			sawAlpha = true
		}
		if msg.Content == "beta question" {
			sawBeta = true
		}
	}
	assert.False(t, sawAlpha, "turns outside the window should not reach the prompt")
	assert.True(t, sawBeta, "turns inside the window should reach the prompt")
}

func TestProcessChatDeniesForeignSession(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider("reply")
	svc := newChatService(t, db, provider)

	owner := uuid.New()
	created, err := svc.CreateSession(context.Background(), owner, &dto.CreateSessionRequest{})
	require.NoError(t, err)

	_, err = svc.ProcessChat(context.Background(), uuid.New(), &dto.ProcessChatRequest{
		ChatSessionId: &created.Id,
		Message:       "hi",
	})
	require.Error(t, err)
}

func TestSessionLifecycle(t *testing.T) {
	db := newChatTestDB(t)
	provider := mock.NewMockProvider("reply one")
	svc := newChatService(t, db, provider)
	userId := uuid.New()

	created, err := svc.CreateSession(context.Background(), userId, &dto.CreateSessionRequest{Title: "Laptop hunt"})
	require.NoError(t, err)

	_, err = svc.ProcessChat(context.Background(), userId, &dto.ProcessChatRequest{
		ChatSessionId: &created.Id,
		Message:       "Any laptops?",
	})
	require.NoError(t, err)

	sessions, err := svc.GetAllSessions(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Laptop hunt", sessions[0].Title)

	history, err := svc.GetChatHistory(context.Background(), userId, created.Id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, history[0].Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, history[1].Role)

	require.NoError(t, svc.DeleteSession(context.Background(), userId, &dto.DeleteSessionRequest{
		ChatSessionId: created.Id,
	}))

	sessions, err = svc.GetAllSessions(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	var msgCount int64
	require.NoError(t, db.Model(&model.ChatMessage{}).
		Where("chat_session_id = ?", created.Id).Count(&msgCount).Error)
	assert.Equal(t, int64(0), msgCount)
}
