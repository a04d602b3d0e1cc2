package logger

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventRequestReceived    EventType = "request_received"
	EventRequestDecoded     EventType = "request_decoded"
	EventDecodeFallback     EventType = "decode_fallback"
	EventRecommendationSent EventType = "recommendation_sent"
	EventRequestFailed      EventType = "request_failed"
)

type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Service   string                 `json:"service"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Component string                 `json:"component"` // api, decoder, service, redis
}

// EventLogger хранит последние события в памяти для диагностических эндпоинтов
type EventLogger struct {
	events  []Event
	mu      sync.RWMutex
	maxSize int
}

// NewEventLogger создает журнал на maxSize последних событий
func NewEventLogger(maxSize int) *EventLogger {
	return &EventLogger{
		events:  make([]Event, 0, maxSize),
		maxSize: maxSize,
	}
}

// LogEvent добавляет событие в журнал, вытесняя самое старое при переполнении
func (el *EventLogger) LogEvent(eventType EventType, service string, component string, data map[string]interface{}) {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Service:   service,
		Component: component,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	el.mu.Lock()
	defer el.mu.Unlock()

	if el.maxSize > 0 && len(el.events) == el.maxSize {
		copy(el.events, el.events[1:])
		el.events[len(el.events)-1] = event
		return
	}
	el.events = append(el.events, event)
}

// GetEvents возвращает не более limit последних событий (limit <= 0 - все)
func (el *EventLogger) GetEvents(limit int) []Event {
	el.mu.RLock()
	defer el.mu.RUnlock()

	n := len(el.events)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]Event(nil), el.events[len(el.events)-n:]...)
}

// GetStats сводит журнал по компонентам, сервисам и типам событий,
// а также по декодерам запросов и HTTP статусам ошибок
func (el *EventLogger) GetStats() map[string]interface{} {
	el.mu.RLock()
	defer el.mu.RUnlock()

	components := make(map[string]int)
	services := make(map[string]int)
	eventTypes := make(map[string]int)
	decoders := make(map[string]int)
	failures := make(map[string]int)

	for _, event := range el.events {
		components[event.Component]++
		services[event.Service]++
		eventTypes[string(event.Type)]++

		switch event.Type {
		case EventRequestDecoded:
			if name, ok := event.Data["decoder"].(string); ok {
				decoders[name]++
			}
		case EventDecodeFallback:
			decoders["default"]++
		case EventRequestFailed:
			failures[fmt.Sprint(event.Data["status"])]++
		}
	}

	return map[string]interface{}{
		"total_events":     len(el.events),
		"components":       components,
		"services":         services,
		"event_types":      eventTypes,
		"decoders":         decoders,
		"failed_by_status": failures,
	}
}

// MarshalJSON сериализует время события в RFC3339
func (e Event) MarshalJSON() ([]byte, error) {
	type plain Event
	return json.Marshal(struct {
		plain
		Timestamp string `json:"timestamp"`
	}{
		plain:     plain(e),
		Timestamp: e.Timestamp.Format(time.RFC3339),
	})
}
