package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/minibank/pkg/domain"
)

// SimpleEventBus is a synchronous in-memory EventBus. Handlers run on the
// publisher's goroutine, in subscription order.
type SimpleEventBus struct {
	handlers map[string][]func(context.Context, domain.Event)
	mu       sync.RWMutex
}

// NewSimpleEventBus creates an empty bus.
func NewSimpleEventBus() *SimpleEventBus {
	return &SimpleEventBus{handlers: make(map[string][]func(context.Context, domain.Event))}
}

// Publish delivers the event to every handler subscribed to its type.
func (b *SimpleEventBus) Publish(ctx context.Context, event domain.Event) error {
	slog.Debug("EventBus.Publish", "event_type", event.Type())
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, handler := range b.handlers[event.Type()] {
		handler(ctx, event)
	}
	return nil
}

// Subscribe registers a handler for an event type.
func (b *SimpleEventBus) Subscribe(eventType string, handler func(context.Context, domain.Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

var _ EventBus = (*SimpleEventBus)(nil)
