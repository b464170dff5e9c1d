// Package main provides the daisy-docs-server entry point.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/daisydays/daisy-docs-server/internal/complete"
	"github.com/daisydays/daisy-docs-server/internal/concepts"
	"github.com/daisydays/daisy-docs-server/internal/config"
	"github.com/daisydays/daisy-docs-server/internal/docs"
	"github.com/daisydays/daisy-docs-server/internal/logger"
	"github.com/daisydays/daisy-docs-server/internal/render"
	"github.com/daisydays/daisy-docs-server/internal/server"
)

func main() {
	// Load .env if present (local development), ignore if missing.
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	// Cancel on SIGTERM/SIGINT.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// The store is built once here and shared read-only from then on.
	store := docs.Load(docs.ParseOptions{
		Duplicates:     cfg.DuplicatePolicy,
		MinTokenLength: cfg.Search.MinTokenLength,
		Logger:         log,
	})
	engine := docs.NewEngine(store, cfg.Search)

	catalog, err := concepts.Load()
	if err != nil {
		log.Fatal("failed to load concept catalog", zap.Error(err))
	}

	registry, err := server.NewRegistry(server.BuildTools(engine, catalog, render.New())...)
	if err != nil {
		log.Fatal("failed to build tool registry", zap.Error(err))
	}

	dispatcher := server.NewDispatcher(registry, complete.Build(engine, catalog), log)
	router := server.NewRouter(dispatcher, store, log)

	log.Info("corpus loaded",
		zap.Int("components", store.Len()),
		zap.Int("concepts", catalog.Len()),
		zap.Strings("tools", registry.Names()))

	addr := "0.0.0.0:" + cfg.Port

	if cfg.ServerMode {
		// HTTP mode: serve the protocol over /rpc for remote clients.
		log.Info("starting http server", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, router); err != nil {
			log.Fatal("http server error", zap.Error(err))
		}
		return
	}

	// Stdio mode: line protocol on stdin/stdout, with the health and
	// metrics endpoints on HTTP in the background for local inspection.
	go func() {
		log.Info("starting health server", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, router); err != nil {
			log.Warn("health server error", zap.Error(err))
		}
	}()

	log.Info("starting stdio loop")
	loop := server.NewLoop(dispatcher, log)
	if err := loop.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		log.Error("serve loop error", zap.Error(err))
		os.Exit(1)
	}
}
