package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"jamesfarrell.me/video-to-recipe/internal/api"
	"jamesfarrell.me/video-to-recipe/internal/config"
	"jamesfarrell.me/video-to-recipe/internal/media"
	"jamesfarrell.me/video-to-recipe/internal/pipeline"
	"jamesfarrell.me/video-to-recipe/internal/recipe"
	"jamesfarrell.me/video-to-recipe/internal/transcription"
)

var version = "dev"

func main() {
	envFile := flag.String("env", "", "path to .env file (default .env)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		early := zerolog.New(os.Stderr).With().Timestamp().Logger()
		early.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
	log.Info().Str("version", version).Msg("video-to-recipe starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := openai.NewClientWithConfig(cfg.OpenAI())
	orchestrator := pipeline.NewOrchestrator(
		media.NewYtDlp(cfg.YtDlpPath, cfg.AudioFormat, cfg.AudioQuality, log.With().Str("component", "media").Logger()),
		transcription.NewService(client, cfg.TranscriptionModel),
		recipe.NewExtractor(client, cfg.ExtractionModel),
		cfg.TempDir,
		log.With().Str("component", "pipeline").Logger(),
	)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.NewRouter(orchestrator, cfg.APISecret, log.With().Str("component", "http").Logger()),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}

	log.Info().Msg("video-to-recipe stopped")
}
