package services

import (
	"context"
	"errors"
	"testing"

	"account-recommendation/internal/models"
	redismocks "account-recommendation/internal/redis/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewStubRecommendationService(t *testing.T) {
	service := NewStubRecommendationService(zap.NewNop())

	assert.NotNil(t, service)
	impl, ok := service.(*StubRecommendationService)
	require.True(t, ok)
	assert.Nil(t, impl.stats)
}

func TestStubRecommendationService_Recommend_EchoesAccountName(t *testing.T) {
	service := NewStubRecommendationService(zap.NewNop())

	req := &models.AccountRecommendationRequest{AccountName: "定期性貯金積金", FileType: models.FileTypeBalanceSheet}
	rec, err := service.Recommend(context.Background(), req, "json")

	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "定期性貯金積金", rec.AccountName)
	assert.Equal(t, StubStandardAccountCode, rec.StandardAccountCode)
	assert.Equal(t, StubStandardAccountName, rec.StandardAccountName)
	assert.NotEmpty(t, rec.Rationale)
	assert.GreaterOrEqual(t, rec.Confidence, 0.0)
	assert.LessOrEqual(t, rec.Confidence, 1.0)
}

func TestStubRecommendationService_Recommend_SamePayloadForAllFileTypes(t *testing.T) {
	service := NewStubRecommendationService(zap.NewNop())

	var first *models.Recommendation
	for _, ft := range []models.FileType{models.FileTypeBalanceSheet, models.FileTypeProfitLoss, models.FileTypeCashFlow} {
		rec, err := service.Recommend(context.Background(), &models.AccountRecommendationRequest{AccountName: "現金", FileType: ft}, "")
		require.NoError(t, err)
		if first == nil {
			first = rec
			continue
		}
		assert.Equal(t, first, rec)
	}
}

func TestStubRecommendationService_Recommend_InvalidRequest(t *testing.T) {
	service := NewStubRecommendationService(zap.NewNop())

	rec, err := service.Recommend(context.Background(), &models.AccountRecommendationRequest{FileType: models.FileTypeBalanceSheet}, "")

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestStubRecommendationService_Recommend_RecordsStats(t *testing.T) {
	mockStats := new(redismocks.MockStatsRecorder)
	service := NewStubRecommendationServiceWithRedis(zap.NewNop(), mockStats)

	mockStats.On("IncrementRequestStats", mock.Anything, "pl", "form").Return(nil)

	req := &models.AccountRecommendationRequest{AccountName: "売上高", FileType: models.FileTypeProfitLoss}
	_, err := service.Recommend(context.Background(), req, "form")

	require.NoError(t, err)
	mockStats.AssertExpectations(t)
}

func TestStubRecommendationService_Recommend_StatsErrorIsNotFatal(t *testing.T) {
	mockStats := new(redismocks.MockStatsRecorder)
	service := NewStubRecommendationServiceWithRedis(zap.NewNop(), mockStats)

	mockStats.On("IncrementRequestStats", mock.Anything, "bs", "json").Return(errors.New("redis error"))

	req := &models.AccountRecommendationRequest{AccountName: "現金", FileType: models.FileTypeBalanceSheet}
	rec, err := service.Recommend(context.Background(), req, "json")

	require.NoError(t, err)
	assert.Equal(t, "現金", rec.AccountName)
	mockStats.AssertExpectations(t)
}
