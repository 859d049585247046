// Command extract runs the recipe pipeline once for a single video URL and
// prints the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"jamesfarrell.me/video-to-recipe/internal/config"
	"jamesfarrell.me/video-to-recipe/internal/media"
	"jamesfarrell.me/video-to-recipe/internal/pipeline"
	"jamesfarrell.me/video-to-recipe/internal/recipe"
	"jamesfarrell.me/video-to-recipe/internal/transcription"
)

func main() {
	videoURL := flag.String("url", "", "video URL to extract a recipe from")
	envFile := flag.String("env", "", "path to .env file (default .env)")
	flag.Parse()

	if *videoURL == "" {
		fmt.Println("Usage: extract -url <video-url> [-env <path>]")
		os.Exit(2)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := runOneOff(*videoURL, *envFile, log); err != nil {
		log.Error().Err(err).Msg("extraction failed")
		os.Exit(1)
	}
}

func runOneOff(videoURL, envFile string, log zerolog.Logger) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := openai.NewClientWithConfig(cfg.OpenAI())
	orchestrator := pipeline.NewOrchestrator(
		media.NewYtDlp(cfg.YtDlpPath, cfg.AudioFormat, cfg.AudioQuality, log),
		transcription.NewService(client, cfg.TranscriptionModel),
		recipe.NewExtractor(client, cfg.ExtractionModel),
		cfg.TempDir,
		log,
	)

	result, err := orchestrator.Run(ctx, videoURL)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
