package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"jamesfarrell.me/video-to-recipe/internal/models"
)

// audioBaseName is the file name, without extension, yt-dlp writes into the
// working directory.
const audioBaseName = "audio"

// YtDlp downloads audio and metadata with the yt-dlp binary. yt-dlp shells
// out to ffmpeg for the audio transcode, so both must be on the host.
type YtDlp struct {
	binaryPath   string
	audioFormat  string
	audioQuality string
	log          zerolog.Logger
}

func NewYtDlp(binaryPath, audioFormat, audioQuality string, log zerolog.Logger) *YtDlp {
	if binaryPath == "" {
		binaryPath = "yt-dlp"
	}
	return &YtDlp{
		binaryPath:   binaryPath,
		audioFormat:  audioFormat,
		audioQuality: audioQuality,
		log:          log,
	}
}

// DownloadAudio fetches the best available audio for videoURL into dir,
// transcoded to the configured format, and returns the video's metadata.
// The returned audio path is empty when yt-dlp finished without leaving an
// audio file behind.
func (d *YtDlp) DownloadAudio(ctx context.Context, videoURL, dir string) (models.VideoMetadata, string, error) {
	var meta models.VideoMetadata

	cmd := exec.CommandContext(ctx, d.binaryPath,
		"--quiet",
		"--no-warnings",
		"--no-playlist",
		"--format", "bestaudio/best",
		"--extract-audio",
		"--audio-format", d.audioFormat,
		"--audio-quality", d.audioQuality,
		"--dump-json",
		"--no-simulate",
		"-o", filepath.Join(dir, audioBaseName+".%(ext)s"),
		videoURL)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	d.log.Debug().Str("url", videoURL).Str("dir", dir).Msg("running yt-dlp")
	if err := cmd.Run(); err != nil {
		return meta, "", fmt.Errorf("yt-dlp failed: %w, stderr: %s", err, strings.TrimSpace(stderr.String()))
	}

	// --dump-json prints one info document per line; only the first one
	// describes the requested video.
	if err := json.NewDecoder(&stdout).Decode(&meta); err != nil {
		if errors.Is(err, io.EOF) {
			return meta, "", fmt.Errorf("yt-dlp returned no metadata")
		}
		return meta, "", fmt.Errorf("decode yt-dlp metadata: %w", err)
	}

	audioPath := filepath.Join(dir, audioBaseName+"."+d.audioFormat)
	if _, err := os.Stat(audioPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return meta, "", fmt.Errorf("stat audio file: %w", err)
		}
		d.log.Warn().Str("url", videoURL).Msg("yt-dlp produced no audio file")
		return meta, "", nil
	}

	return meta, audioPath, nil
}
