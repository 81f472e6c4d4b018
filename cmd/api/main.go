package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mia-boutique/storefront/internal/catalog"
	"github.com/mia-boutique/storefront/internal/config"
	"github.com/mia-boutique/storefront/internal/httpx"
	kafkax "github.com/mia-boutique/storefront/internal/kafka"
	"github.com/mia-boutique/storefront/internal/orders"
	"github.com/mia-boutique/storefront/internal/redisx"
	"github.com/mia-boutique/storefront/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// storage backend
	var backend storage.Backend
	switch cfg.DataBackend {
	case config.BackendPostgres:
		pg, err := storage.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatal("postgres connect", zap.Error(err))
		}
		defer pg.Close()
		backend = pg
	default:
		backend = storage.NewJSONFiles(cfg.DataDir)
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, 1024)
	prod.Start(ctx)

	// Repos & handler
	cat := &catalog.Repo{Backend: backend}
	ord := &orders.Repo{Backend: backend, Catalog: cat}
	router := httpx.NewRouter()
	h := &httpx.Handler{
		Catalog:  cat,
		Orders:   ord,
		Redis:    rdb,
		Producer: prod,
		Secret:   []byte(cfg.SessionSecret),
		Password: cfg.AdminPassword,
		Service:  cfg.ServiceName,
		Log:      log,
	}
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr), zap.String("backend", cfg.DataBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // close inbox -> flush & close writer
	cancel()          // stop producer loop
	prod.WaitClosed() // drain
}
