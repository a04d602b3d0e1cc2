package database

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// IsBusy проверяет, можно ли повторить операцию при данной ошибке
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// SQLITE_BUSY (5) - база данных заблокирована
	// SQLITE_LOCKED (6) - таблица заблокирована
	return strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked") ||
		strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "SQLITE_LOCKED")
}

// Retry выполняет операцию повторно, пока она завершается ошибкой блокировки.
// Прочие ошибки возвращаются сразу.
func Retry(ctx context.Context, attempts int, delay time.Duration, operation func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsBusy(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-time.After(delay * time.Duration(i+1)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", attempts, lastErr)
}
