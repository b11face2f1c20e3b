package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Llm      LlmConfig
	Query    QueryConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Driver     string // "postgres" or "sqlite"
	Connection string
}

type RedisConfig struct {
	Host string
	Port int
}

type LlmConfig struct {
	Provider        string // "anthropic", "openai", "mock"
	Model           string
	MockMode        bool
	AnthropicAPIKey string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	Timeout         time.Duration
	HistoryWindow   int // max prior messages included in the prompt
	SQLTopK         int // row-limit hint passed to the SQL generation prompt
}

type QueryConfig struct {
	Timeout time.Duration
	MaxRows int
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnvAsInt("REDIS_PORT", 6379),
		},
		Llm: LlmConfig{
			Provider:        getEnv("LLM_PROVIDER", "anthropic"),
			Model:           getEnv("LLM_MODEL", "claude-3-5-sonnet-latest"),
			MockMode:        getEnvAsBool("LLM_MOCK_MODE", false),
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
			Timeout:         getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
			HistoryWindow:   getEnvAsInt("HISTORY_WINDOW", 20),
			SQLTopK:         getEnvAsInt("SQL_TOP_K", 10),
		},
		Query: QueryConfig{
			Timeout: getEnvAsDuration("QUERY_TIMEOUT", 5*time.Second),
			MaxRows: getEnvAsInt("QUERY_MAX_ROWS", 100),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "catalog-chat-be"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
