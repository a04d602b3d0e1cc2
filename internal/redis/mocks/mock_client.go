package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStatsRecorder является моком для redis.StatsRecorder интерфейса
type MockStatsRecorder struct {
	mock.Mock
}

// IncrementRequestStats мок для IncrementRequestStats
func (m *MockStatsRecorder) IncrementRequestStats(ctx context.Context, fileType, decoder string) error {
	args := m.Called(ctx, fileType, decoder)
	return args.Error(0)
}

// GetRequestStats мок для GetRequestStats
func (m *MockStatsRecorder) GetRequestStats(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// ClearRequestStats мок для ClearRequestStats
func (m *MockStatsRecorder) ClearRequestStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
