package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Subscriber receives every event published in-process.
type Subscriber func(ctx context.Context, eventType string, event interface{})

// InMemoryEventPublisher records events and fans them out to local subscribers.
// It is used when Kafka is disabled and in tests.
type InMemoryEventPublisher struct {
	logger      *zap.Logger
	mu          sync.Mutex
	events      []interface{}
	subscribers []Subscriber
}

func NewInMemoryEventPublisher(logger *zap.Logger) *InMemoryEventPublisher {
	return &InMemoryEventPublisher{
		logger: logger,
		events: make([]interface{}, 0),
	}
}

func (p *InMemoryEventPublisher) Subscribe(fn Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, fn)
}

func (p *InMemoryEventPublisher) Publish(ctx context.Context, event interface{}) error {
	eventType := EventType(event)

	p.mu.Lock()
	p.events = append(p.events, event)
	subscribers := append([]Subscriber(nil), p.subscribers...)
	p.mu.Unlock()

	p.logger.Debug("Event published (in-memory)", zap.String("event-type", eventType))
	for _, fn := range subscribers {
		fn(ctx, eventType, event)
	}
	return nil
}

// Events returns a copy of everything published so far.
func (p *InMemoryEventPublisher) Events() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]interface{}(nil), p.events...)
}

// EventsOfType filters Events by event type name.
func (p *InMemoryEventPublisher) EventsOfType(eventType string) []interface{} {
	var result []interface{}
	for _, e := range p.Events() {
		if EventType(e) == eventType {
			result = append(result, e)
		}
	}
	return result
}
