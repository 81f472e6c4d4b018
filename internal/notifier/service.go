// Package notifier turns order events into staff notifications. For now the
// notification channel is the log; the consumer plumbing (dedup, manual
// commit) is what matters.
package notifier

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/mia-boutique/storefront/internal/format"
	kafkax "github.com/mia-boutique/storefront/internal/kafka"
	"github.com/mia-boutique/storefront/internal/orders"
	"github.com/mia-boutique/storefront/internal/redisx"
)

type Service struct {
	Redis *redis.Client
	Log   *zap.Logger
	Name  string
}

// HandleOrderCreated processes one order.created message. Returning nil
// commits the offset.
func (s *Service) HandleOrderCreated(ctx context.Context, m kafkago.Message) error {
	var ev orders.Envelope
	if err := kafkax.UnmarshalEnvelope(m.Value, &ev); err != nil {
		s.Log.Warn("skipping undecodable event", zap.Error(err))
		return nil
	}
	if ev.EventType != orders.EventOrderCreated {
		return nil
	}

	// at-least-once delivery: drop replays seen within the dedup window
	dedupKey := fmt.Sprintf(redisx.KeyDedup, s.Name, ev.EventID)
	if s.Redis != nil {
		set, err := s.Redis.SetNX(ctx, dedupKey, 1, redisx.TTLDedup).Result()
		if err == nil && !set {
			return nil
		}
	}

	p, err := kafkax.UnwrapPayload[orders.OrderCreatedPayload](ev.Payload)
	if err != nil {
		s.Log.Warn("skipping undecodable payload", zap.Error(err))
		return nil
	}

	s.Log.Info("new order",
		zap.String("order_number", p.OrderNumber),
		zap.String("customer", p.CustomerName),
		zap.String("phone", format.Phone(p.CustomerPhone)),
		zap.Int("items", p.ItemCount),
		zap.String("total", format.Price(p.TotalAmount)),
	)
	return nil
}
