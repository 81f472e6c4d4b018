package notifier

import (
	"context"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	kafkax "github.com/mia-boutique/storefront/internal/kafka"
	"github.com/mia-boutique/storefront/internal/orders"
)

func orderCreatedMessage(t *testing.T) kafkago.Message {
	t.Helper()
	ev := orders.Envelope{
		EventID:      "ev-1",
		EventType:    orders.EventOrderCreated,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "storefront-api",
	}
	ev.Payload = kafkax.MustMarshal(orders.OrderCreatedPayload{
		OrderID:       "o-1",
		OrderNumber:   "MIA-2026-0001",
		CustomerName:  "Анна Иванова",
		CustomerPhone: "89123456789",
		ItemCount:     2,
		TotalAmount:   25980,
	})
	return kafkago.Message{Value: kafkax.MustMarshal(ev)}
}

func TestHandleOrderCreated(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := &Service{Log: zap.New(core), Name: "notifier"}

	err := s.HandleOrderCreated(context.Background(), orderCreatedMessage(t))
	assert.NoError(t, err)

	entries := logs.FilterMessage("new order").All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "MIA-2026-0001", fields["order_number"])
	assert.Equal(t, "+7 (912) 345-67-89", fields["phone"])
	assert.Equal(t, int64(2), fields["items"])
}

func TestHandleSkipsOtherEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := &Service{Log: zap.New(core), Name: "notifier"}

	ev := orders.Envelope{EventID: "ev-2", EventType: orders.EventOrderStatusChanged}
	ev.Payload = kafkax.MustMarshal(orders.OrderStatusChangedPayload{})
	err := s.HandleOrderCreated(context.Background(), kafkago.Message{Value: kafkax.MustMarshal(ev)})
	assert.NoError(t, err)
	assert.Empty(t, logs.All())
}

func TestHandleGarbageCommits(t *testing.T) {
	s := &Service{Log: zap.NewNop(), Name: "notifier"}
	err := s.HandleOrderCreated(context.Background(), kafkago.Message{Value: []byte("not json")})
	assert.NoError(t, err)
}
