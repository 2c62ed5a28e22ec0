// Package eventbus provides the in-process publish/subscribe channel the
// ledger uses to fan out domain events to interested handlers.
package eventbus

import (
	"context"

	"github.com/amirasaad/minibank/pkg/domain"
)

// EventBus defines the contract for publishing and subscribing to domain
// events.
type EventBus interface {
	Publish(ctx context.Context, event domain.Event) error
	Subscribe(eventType string, handler func(context.Context, domain.Event))
}
