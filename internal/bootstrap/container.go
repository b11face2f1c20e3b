package bootstrap

import (
	"context"
	"fmt"
	"log"

	"catalog-chat-be/internal/config"
	"catalog-chat-be/internal/controller"
	"catalog-chat-be/internal/pkg/logger"
	"catalog-chat-be/internal/repository/memory"
	"catalog-chat-be/internal/repository/rediscache"
	"catalog-chat-be/internal/repository/unitofwork"
	"catalog-chat-be/internal/service"
	"catalog-chat-be/pkg/llm/factory"
	"catalog-chat-be/pkg/sqlguard"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	ChatController   controller.IChatController
	HealthController controller.IHealthController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider
	llmProvider, err := factory.NewLLMProvider(cfg.Llm)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Llm.Provider, cfg.Llm.Model)

	// 3. Caches
	sessionCache := memory.NewSessionCache()

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		// The chat cache fails open, so the app still works without Redis.
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	chatCache := rediscache.NewChatCache(rdb, cfg.Llm.HistoryWindow)

	// 4. Query Executor
	queryExecutor := sqlguard.NewExecutor(db, sqlguard.CatalogTables, cfg.Query.Timeout, cfg.Query.MaxRows)

	// 5. Services
	chatService := service.NewChatService(
		uowFactory,
		llmProvider,
		queryExecutor,
		sessionCache,
		chatCache,
		sysLogger,
		cfg.Llm.Timeout,
		sqlDialect(cfg.Database.Driver),
		cfg.Llm.SQLTopK,
		cfg.Llm.HistoryWindow,
	)

	// 6. Controllers
	return &Container{
		ChatController:   controller.NewChatController(chatService),
		HealthController: controller.NewHealthController(),
	}
}

func sqlDialect(driver string) string {
	if driver == "sqlite" {
		return "SQLite"
	}
	return "PostgreSQL"
}
