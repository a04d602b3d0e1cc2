package services

import (
	"context"

	"go.uber.org/zap"

	"account-recommendation/internal/models"
	"account-recommendation/internal/redis"
)

// Фиксированная рекомендация заглушки
const (
	StubStandardAccountCode = "1010"
	StubStandardAccountName = "テスト勘定科目"
	StubConfidence          = 0.85
	StubRationale           = "これはテスト用の説明です。"
	StubAccountType         = "テスト"
)

// StubRecommendationService реализует RecommendationService без обращения к модели
type StubRecommendationService struct {
	stats  redis.StatsRecorder // Опциональные счетчики запросов
	logger *zap.Logger
}

// NewStubRecommendationService создает заглушку сервиса рекомендаций
func NewStubRecommendationService(logger *zap.Logger) RecommendationService {
	return &StubRecommendationService{logger: logger}
}

// NewStubRecommendationServiceWithRedis создает заглушку со счетчиками запросов в Redis
func NewStubRecommendationServiceWithRedis(logger *zap.Logger, stats redis.StatsRecorder) RecommendationService {
	return &StubRecommendationService{stats: stats, logger: logger}
}

// Recommend возвращает фиксированную рекомендацию, повторяя имя счета из запроса
func (s *StubRecommendationService) Recommend(ctx context.Context, req *models.AccountRecommendationRequest, decoder string) (*models.Recommendation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.stats != nil {
		if err := s.stats.IncrementRequestStats(ctx, string(req.FileType), decoder); err != nil {
			s.logger.Warn("failed to update request stats", zap.Error(err))
		}
	}

	return &models.Recommendation{
		AccountName:         req.AccountName,
		StandardAccountCode: StubStandardAccountCode,
		StandardAccountName: StubStandardAccountName,
		Confidence:          StubConfidence,
		Rationale:           StubRationale,
		AccountType:         StubAccountType,
	}, nil
}
