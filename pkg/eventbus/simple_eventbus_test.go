package eventbus_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/minibank/pkg/domain"
	"github.com/amirasaad/minibank/pkg/domain/events"
	"github.com/amirasaad/minibank/pkg/eventbus"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	t.Parallel()
	bus := eventbus.NewSimpleEventBus()

	var got []domain.Event
	bus.Subscribe("ClientRegistered", func(_ context.Context, e domain.Event) {
		got = append(got, e)
	})

	ev := events.ClientRegistered{
		ID:         uuid.New(),
		CPF:        "12345678901",
		Name:       "Maria Silva",
		OccurredAt: time.Now(),
	}
	require.NoError(t, bus.Publish(context.Background(), ev))
	require.Len(t, got, 1)
	assert.Equal(t, ev, got[0])
}

func TestPublishIgnoresUnsubscribedTypes(t *testing.T) {
	t.Parallel()
	bus := eventbus.NewSimpleEventBus()

	called := false
	bus.Subscribe("AccountOpened", func(_ context.Context, _ domain.Event) {
		called = true
	})

	ev := events.TransactionExecuted{ID: uuid.New(), AccountNumber: 1}
	require.NoError(t, bus.Publish(context.Background(), ev))
	assert.False(t, called)
}

func TestSubscribersRunInOrder(t *testing.T) {
	t.Parallel()
	bus := eventbus.NewSimpleEventBus()

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		bus.Subscribe("AccountOpened", func(_ context.Context, _ domain.Event) {
			order = append(order, i)
		})
	}

	ev := events.AccountOpened{ID: uuid.New(), AccountNumber: 1, CPF: "12345678901"}
	require.NoError(t, bus.Publish(context.Background(), ev))
	assert.Equal(t, []int{1, 2, 3}, order)
}
