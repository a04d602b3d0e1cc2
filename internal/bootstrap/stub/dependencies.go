package stub

import (
	"context"

	"go.uber.org/zap"

	"account-recommendation/internal/config"
	"account-recommendation/internal/logger"
	"account-recommendation/internal/redis"
	"account-recommendation/internal/services"
)

const eventJournalSize = 1000

// Dependencies содержит все зависимости заглушки сервиса рекомендаций
type Dependencies struct {
	Events                *logger.EventLogger
	RedisClient           *redis.Client
	Stats                 redis.StatsRecorder // nil, если Redis не настроен
	RecommendationService services.RecommendationService
}

// InitializeDependencies инициализирует зависимости.
// Redis необязателен: при ошибке подключения сервис работает без счетчиков.
func InitializeDependencies(ctx context.Context, cfg *config.Config, log *zap.Logger) *Dependencies {
	deps := &Dependencies{
		Events: logger.NewEventLogger(eventJournalSize),
	}

	if cfg.Redis.Enabled() {
		log.Info("connecting to Redis", zap.String("host", cfg.Redis.Host), zap.String("port", cfg.Redis.Port))
		redisClient, err := redis.NewClient(ctx, cfg)
		if err != nil {
			log.Warn("Redis unavailable, request stats disabled", zap.Error(err))
		} else {
			log.Info("Redis connection established")
			deps.RedisClient = redisClient
			deps.Stats = redisClient
		}
	}

	if deps.Stats != nil {
		deps.RecommendationService = services.NewStubRecommendationServiceWithRedis(log, deps.Stats)
	} else {
		deps.RecommendationService = services.NewStubRecommendationService(log)
	}

	return deps
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.RedisClient != nil {
		return d.RedisClient.Close()
	}
	return nil
}
