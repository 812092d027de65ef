package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tgju/internal/cache"
	"tgju/internal/config"
	"tgju/internal/fetch"
	"tgju/internal/pipeline"
	"tgju/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := fetch.NewClient(cfg)
	extractor := pipeline.NewExtractor(client, pipeline.Options{Keys: pipeline.KeyTransliterate})
	envelopeCache := cache.New(time.Duration(cfg.CacheTTLMin) * time.Minute)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.New(extractor, envelopeCache, log.Default()).Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
