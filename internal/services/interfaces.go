package services

import (
	"context"

	"account-recommendation/internal/models"
)

// RecommendationService определяет интерфейс подбора стандартного счета
type RecommendationService interface {
	// Recommend возвращает рекомендацию для нормализованного запроса.
	// decoder - имя декодера, разобравшего запрос (для статистики), может быть пустым.
	Recommend(ctx context.Context, req *models.AccountRecommendationRequest, decoder string) (*models.Recommendation, error)
}
