package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"catalog-chat-be/internal/controller"
	"catalog-chat-be/internal/model"
	"catalog-chat-be/internal/pkg/serverutils"
	"catalog-chat-be/internal/repository/memory"
	"catalog-chat-be/internal/repository/rediscache"
	"catalog-chat-be/internal/repository/unitofwork"
	"catalog-chat-be/internal/service"
	"catalog-chat-be/pkg/llm/mock"
	"catalog-chat-be/pkg/sqlguard"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
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

func newTestApp(t *testing.T, provider *mock.MockProvider) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", t.Name())
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

	chatService := service.NewChatService(
		unitofwork.NewRepositoryFactory(db),
		provider,
		sqlguard.NewExecutor(db, sqlguard.CatalogTables, 5*time.Second, 100),
		memory.NewSessionCache(),
		rediscache.NewChatCache(nil, 20),
		nopLogger{},
		30*time.Second,
		"SQLite",
		10,
		20,
	)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	controller.NewHealthController().RegisterRoutes(api)
	controller.NewChatController(chatService).RegisterRoutes(api)
	return app
}

func signToken(t *testing.T, userId uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t, mock.NewMockProvider())

	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestChatRequiresToken(t *testing.T) {
	app := newTestApp(t, mock.NewMockProvider())

	body := bytes.NewBufferString(`{"message":"hi"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/chat/v1", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChatRejectsTokenWithoutUserId(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(t, mock.NewMockProvider())

	// Validly signed, but carrying no user_id claim.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	body := bytes.NewBufferString(`{"message":"hi"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/chat/v1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChatValidationFailure(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(t, mock.NewMockProvider())

	body := bytes.NewBufferString(`{"message":""}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/chat/v1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New()))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatEndToEnd(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	provider := mock.NewMockProvider("Welcome! Ask me about the catalog.")
	app := newTestApp(t, provider)
	userId := uuid.New()

	body := bytes.NewBufferString(`{"message":"Hello"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/chat/v1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, userId))

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    struct {
			ChatSessionId  uuid.UUID `json:"chat_session_id"`
			CreatedNewChat bool      `json:"created_new_chat"`
			Reply          string    `json:"reply"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, 200, envelope.Code)
	assert.True(t, envelope.Data.CreatedNewChat)
	assert.Equal(t, "Welcome! Ask me about the catalog.", envelope.Data.Reply)
	assert.NotEqual(t, uuid.Nil, envelope.Data.ChatSessionId)

	// The new session shows up in the listing.
	listReq, _ := http.NewRequest(http.MethodGet, "/api/chat/v1/sessions", nil)
	listReq.Header.Set("Authorization", "Bearer "+signToken(t, userId))
	listResp, err := app.Test(listReq)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
}
