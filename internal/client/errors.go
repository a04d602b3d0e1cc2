package client

import "fmt"

// StatusError возвращается, когда сервер ответил кодом, отличным от 200
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Retryable сообщает, имеет ли смысл повторить запрос
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= 500
}

// APIError возвращается, когда сервер ответил 200, но success=false
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "recommendation failed: " + e.Message
}
