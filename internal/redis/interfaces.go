package redis

import "context"

// StatsRecorder определяет интерфейс счетчиков запросов.
// Реализуется типом Client, в тестах заменяется моком.
type StatsRecorder interface {
	// IncrementRequestStats увеличивает счетчики по типу отчетности и декодеру
	IncrementRequestStats(ctx context.Context, fileType, decoder string) error

	// GetRequestStats возвращает текущие значения счетчиков
	GetRequestStats(ctx context.Context) (map[string]int64, error)

	// ClearRequestStats удаляет все счетчики
	ClearRequestStats(ctx context.Context) error
}

var _ StatsRecorder = (*Client)(nil)
