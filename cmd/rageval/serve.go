package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/api"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/setup"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/setup/logger"
)

func runServe(ctx context.Context, port string) error {
	cfg, consoleLogger, err := loadConfig(ctx)
	if err != nil {
		consoleLogger.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log := logger.New(cfg.LogLevel)

	deps, err := setup.Wire(ctx, cfg, setup.Options{}, &log)
	if err != nil {
		log.Error().Err(err).Msg("Unable to load dependencies")
		return err
	}
	defer deps.Close()

	handler := api.NewHandler(deps.Generator, deps.Evaluator, &log)
	container := api.NewContainer(handler, deps.Metrics.Handler())

	if port == "" {
		port = cfg.APIPort
	}
	addr := fmt.Sprintf(":%s", port)

	server := http.Server{
		Addr:         addr,
		Handler:      api.WithCORS(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", addr).Msg("Starting RAG Evaluator API")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server failed")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
		return err
	}
	log.Info().Msg("RAG Evaluator API stopped")
	return nil
}
