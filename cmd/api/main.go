package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/infohub/internal/assistant"
	"github.com/geocoder89/infohub/internal/config"
	httpx "github.com/geocoder89/infohub/internal/http"
	"github.com/geocoder89/infohub/internal/observability"
	"github.com/geocoder89/infohub/internal/store"
	"github.com/geocoder89/infohub/internal/store/memstore"
	"github.com/geocoder89/infohub/internal/store/mongostore"
	"github.com/geocoder89/infohub/internal/store/pgstore"
	"github.com/geocoder89/infohub/internal/store/redisstore"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load the config set up
	cfg := config.Load()

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)

	// tracing is optional; skipped when no collector endpoint is set
	if cfg.OTLPEndpoint != "" {
		shutdownTracer, err := observability.InitTracer(context.Background(), "infohub", cfg.OTLPEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}

		defer func() {
			ctx, cancel := config.WithTimeout(5 * time.Second)
			defer cancel()
			_ = shutdownTracer(ctx)
		}()
	}

	// metrics registry
	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	// pick the persistent store backend
	kv, ping, closeStore, err := buildStore(cfg)

	if err != nil {
		log.Error("store init failed", "backend", cfg.StoreBackend, "err", err)
		os.Exit(1)
	}

	defer closeStore()

	instrumented := observability.NewInstrumentedKV(kv, prom)

	// text assistant: real provider only when a key is configured
	var provider assistant.Assistant = assistant.NewNoop()

	if cfg.GeminiAPIKey != "" {
		provider = assistant.NewGuarded(
			assistant.NewGemini(assistant.GeminiConfig{
				APIKey: cfg.GeminiAPIKey,
				Model:  cfg.GeminiModel,
			}),
			assistant.GuardedConfig{},
		)
	}

	assist := assistant.NewService(provider, log, prom)

	// set up routers with the log
	router := httpx.NewRouter(log, httpx.Deps{
		Store:  instrumented,
		Assist: assist,
		Prom:   prom,
		Reg:    reg,
		Ping:   ping,
	})

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// start server using a concurrent go-routine driven anonymous function.

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env, "store", cfg.StoreBackend)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)

			return
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}

// buildStore dials the configured backend and returns the store, a
// readiness ping and a close function.
func buildStore(cfg config.Config) (store.KV, func() error, func(), error) {
	switch cfg.StoreBackend {
	case "redis":
		s := redisstore.New(redisstore.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})

		ping := func() error {
			ctx, cancel := config.WithTimeout(1 * time.Second)
			defer cancel()
			return s.Ping(ctx)
		}

		return s, ping, func() { _ = s.Close() }, nil

	case "postgres":
		pool, err := pgstore.NewPool(cfg.DBURL)

		if err != nil {
			return nil, nil, nil, err
		}

		s := pgstore.New(pool)

		ctx, cancel := config.WithTimeout(5 * time.Second)
		defer cancel()

		err = s.EnsureSchema(ctx)

		if err != nil {
			pool.Close()
			return nil, nil, nil, err
		}

		ping := func() error {
			pctx, pcancel := config.WithTimeout(1 * time.Second)
			defer pcancel()
			return pool.Ping(pctx)
		}

		return s, ping, pool.Close, nil

	case "mongo":
		s, err := mongostore.New(cfg.MongoURI, cfg.MongoDB)

		if err != nil {
			return nil, nil, nil, err
		}

		closeFn := func() {
			ctx, cancel := config.WithTimeout(5 * time.Second)
			defer cancel()
			_ = s.Close(ctx)
		}

		return s, nil, closeFn, nil

	case "memory", "":
		return memstore.New(), nil, func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
