package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amaru/internal/config"
	"amaru/internal/infra"
	"amaru/internal/router"
	"amaru/internal/worker"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger: pretty console in dev, JSON in prod
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	mailer, err := infra.NewMailer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure smtp")
	}
	smtpCB := infra.NewCircuitBreaker("smtp", infra.DefaultCBConfig())

	// Email worker pool consumes what the dispatcher enqueues. Both live in the
	// composition root so request handlers never touch SMTP directly.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	emailWorker := worker.NewEmailWorker(mailer, smtpCB, cfg.NumeroPago)
	workers := worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, emailWorker)
	dispatcher := worker.NewDispatcher(rdb)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := router.New(cfg, db, rdb, dispatcher, smtpCB, reg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Amaru backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	// Pending enqueues finish before the pool stops reading the queue.
	dispatcher.Wait()
	cancel()
	workers.Wait()
	mailer.Close()
	log.Info().Msg("server exited")
}
