package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL  = "http://localhost:5001"
	DefaultPort     = 5001
	DefaultBackend  = "gemini-api"
	DefaultLocation = "us-central1"
)

type Config struct {
	Server   ServerConfig
	Client   ClientConfig
	DB       DBConfig
	Redis    RedisConfig
	Provider ProviderConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
	Mode string // debug, release, test
}

type ClientConfig struct {
	BaseURL    string        // Адрес развернутого приложения (REPLIT_URL)
	Timeout    time.Duration // Таймаут одного HTTP запроса
	MaxRetries int           // Количество повторов; 0 - без повторов
}

type DBConfig struct {
	DatabaseURL string // postgres://..., sqlite://..., file:... или путь к файлу
}

type RedisConfig struct {
	Host     string // Пустой host отключает Redis
	Port     string
	Password string
}

// Enabled сообщает, настроен ли Redis
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type ProviderConfig struct {
	Backend  string // gemini-api или vertex-ai
	APIKey   string
	Project  string
	Location string
}

type LogConfig struct {
	Level string
}

// Load читает конфигурацию один раз при старте процесса
func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnvAsInt("PORT", DefaultPort),
			Mode: getEnv("GIN_MODE", "release"),
		},
		Client: ClientConfig{
			BaseURL:    getEnv("REPLIT_URL", DefaultBaseURL),
			Timeout:    time.Duration(getEnvAsInt("CLIENT_TIMEOUT_SECONDS", 30)) * time.Second,
			MaxRetries: getEnvAsInt("CLIENT_MAX_RETRIES", 0),
		},
		DB: DBConfig{
			DatabaseURL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Provider: ProviderConfig{
			Backend:  getEnv("AI_PROVIDER_BACKEND", DefaultBackend),
			APIKey:   getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", "")),
			Project:  getEnv("GOOGLE_CLOUD_PROJECT", ""),
			Location: getEnv("GOOGLE_CLOUD_LOCATION", DefaultLocation),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
