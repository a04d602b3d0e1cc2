package mocks

import (
	"context"

	"account-recommendation/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockRecommendationService является моком для services.RecommendationService интерфейса
type MockRecommendationService struct {
	mock.Mock
}

// Recommend мок для Recommend
func (m *MockRecommendationService) Recommend(ctx context.Context, req *models.AccountRecommendationRequest, decoder string) (*models.Recommendation, error) {
	args := m.Called(ctx, req, decoder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}
