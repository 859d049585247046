package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"jamesfarrell.me/video-to-recipe/internal/metrics"
	"jamesfarrell.me/video-to-recipe/internal/models"
	"jamesfarrell.me/video-to-recipe/internal/recipe"
)

// MediaFetcher downloads a video's audio into dir and reports its metadata.
// audioPath is empty when no audio file was produced.
type MediaFetcher interface {
	DownloadAudio(ctx context.Context, videoURL, dir string) (meta models.VideoMetadata, audioPath string, err error)
}

type Transcriber interface {
	TranscribeAudio(ctx context.Context, filePath string) (string, error)
}

// RecipeExtractor returns the model's raw JSON text for a prompt.
type RecipeExtractor interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Orchestrator runs fetch, transcribe and extract for one video URL.
type Orchestrator struct {
	fetcher     MediaFetcher
	transcriber Transcriber
	extractor   RecipeExtractor
	tempDir     string
	log         zerolog.Logger
}

// NewOrchestrator creates an Orchestrator. tempDir is the parent of the
// per-run working directories; empty means the OS default.
func NewOrchestrator(
	fetcher MediaFetcher,
	transcriber Transcriber,
	extractor RecipeExtractor,
	tempDir string,
	log zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		fetcher:     fetcher,
		transcriber: transcriber,
		extractor:   extractor,
		tempDir:     tempDir,
		log:         log,
	}
}

// Run extracts a recipe from the video at videoURL. On success the result
// always carries thumbnail_url, source_url and video_title, including when
// the model reported that no recipe was found. Every run does the full
// download, transcription and extraction.
func (o *Orchestrator) Run(ctx context.Context, videoURL string) (models.RecipeResult, error) {
	runID := uuid.NewString()
	log := o.logger(ctx).With().
		Str("run_id", runID).
		Str("video_id", models.VideoID(videoURL)).
		Logger()

	result, err := o.run(ctx, log, runID, videoURL)
	switch {
	case err == nil:
		if msg, ok := result.NotFound(); ok {
			metrics.PipelineRunsTotal.WithLabelValues(metrics.OutcomeNoRecipe).Inc()
			log.Info().Str("reason", msg).Msg("no recipe in video")
		} else {
			metrics.PipelineRunsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
			log.Info().Msg("recipe extracted")
		}
	case errors.Is(err, ErrParse):
		metrics.PipelineRunsTotal.WithLabelValues(metrics.OutcomeParseError).Inc()
	default:
		metrics.PipelineRunsTotal.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
	}
	return result, err
}

func (o *Orchestrator) run(ctx context.Context, log zerolog.Logger, runID, videoURL string) (models.RecipeResult, error) {
	dir, err := os.MkdirTemp(o.tempDir, "recipe-"+runID+"-")
	if err != nil {
		return nil, fmt.Errorf("%w: create temp dir: %w", ErrUpstream, err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("failed to remove temp dir")
		}
	}()

	log.Debug().Str("url", videoURL).Msg("downloading audio")
	start := time.Now()
	meta, audioPath, err := o.fetcher.DownloadAudio(ctx, videoURL, dir)
	metrics.ObserveStage("fetch", start)
	if err != nil {
		return nil, fmt.Errorf("%w: download audio: %w", ErrUpstream, err)
	}

	var transcript string
	if audioPath != "" {
		log.Debug().Str("audio", audioPath).Msg("transcribing audio")
		start = time.Now()
		transcript, err = o.transcriber.TranscribeAudio(ctx, audioPath)
		metrics.ObserveStage("transcribe", start)
		if err != nil {
			return nil, fmt.Errorf("%w: transcribe audio: %w", ErrUpstream, err)
		}
	} else {
		log.Warn().Msg("no audio file, continuing with empty transcript")
	}

	prompt := recipe.BuildPrompt(recipe.BuildContext(meta, transcript))

	log.Debug().Int("transcript_chars", len(transcript)).Msg("extracting recipe")
	start = time.Now()
	raw, err := o.extractor.Complete(ctx, prompt)
	metrics.ObserveStage("extract", start)
	if err != nil {
		return nil, fmt.Errorf("%w: extract recipe: %w", ErrUpstream, err)
	}

	result, err := recipe.ParseResult(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	result.Augment(meta, videoURL)
	return result, nil
}

// logger prefers the request-scoped logger carried by ctx.
func (o *Orchestrator) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &o.log
}
