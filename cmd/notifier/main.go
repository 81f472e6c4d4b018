package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mia-boutique/storefront/internal/config"
	kafkax "github.com/mia-boutique/storefront/internal/kafka"
	"github.com/mia-boutique/storefront/internal/notifier"
	"github.com/mia-boutique/storefront/internal/orders"
	"github.com/mia-boutique/storefront/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	workers := 1
	if v := os.Getenv("NOTIFIER_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			workers = n
		}
	}

	svc := &notifier.Service{Redis: rdb, Log: log, Name: "notifier"}
	consumer := kafkax.NewConsumer(cfg.KafkaBrokers, "notifier", orders.TopicOrderCreated, workers)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		cancel()
	}()

	if err := consumer.Start(ctx, svc.HandleOrderCreated); err != nil {
		log.Fatal("consumer", zap.Error(err))
	}
}
