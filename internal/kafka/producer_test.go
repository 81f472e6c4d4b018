package kafka

import (
	"context"
	"testing"
	"time"
)

// no broker listens here; the writer's delivery attempts fail fast and are
// ignored, which is all shutdown needs
const unreachableBroker = "127.0.0.1:1"

func waitClosed(t *testing.T, p *Producer) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		p.WaitClosed()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("producer did not shut down")
	}
}

func TestProducerCloseThenCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewProducer([]string{unreachableBroker}, 8)
	p.Start(ctx)

	p.Publish("order.created", []byte("k"), []byte("v"))
	p.Close()
	cancel()
	waitClosed(t, p)
}

func TestProducerCancelThenClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewProducer([]string{unreachableBroker}, 8)
	p.Start(ctx)

	cancel()
	p.Close()
	waitClosed(t, p)
}

func TestProducerCloseIdempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p := NewProducer([]string{unreachableBroker}, 8)
	p.Start(ctx)

	p.Close()
	p.Close()
	waitClosed(t, p)
}
