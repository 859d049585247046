package media

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const infoJSON = `{"id":"video123","title":"Pasta Recipe","description":"yum","thumbnail":"https://img/x.jpg","webpage_url":"https://example.com/video123"}`

// fakeYtDlp writes a shell script standing in for yt-dlp. It resolves the -o
// template to <format> and creates that file when writeAudio is set, then
// prints stdout and exits with exitCode.
func fakeYtDlp(t *testing.T, stdout string, writeAudio bool, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}

	touch := ""
	if writeAudio {
		touch = `[ -n "$out" ] && echo "fake audio" > "$(echo "$out" | sed "s/%(ext)s/$fmt/")"`
	}

	script := `#!/bin/sh
out=""
fmt=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift ;;
    --audio-format) fmt="$2"; shift ;;
  esac
  shift
done
` + touch + `
cat <<'JSON'
` + stdout + `
JSON
if [ ` + strconv.Itoa(exitCode) + ` -ne 0 ]; then
  echo "ERROR: Unsupported URL" >&2
fi
exit ` + strconv.Itoa(exitCode) + "\n"

	path := filepath.Join(t.TempDir(), "yt-dlp")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestDownloadAudio(t *testing.T) {
	bin := fakeYtDlp(t, infoJSON, true, 0)
	dir := t.TempDir()

	d := NewYtDlp(bin, "mp3", "64K", zerolog.Nop())
	meta, audioPath, err := d.DownloadAudio(context.Background(), "https://example.com/video123", dir)
	require.NoError(t, err)

	assert.Equal(t, "Pasta Recipe", meta.Title)
	assert.Equal(t, "yum", meta.Description)
	assert.Equal(t, "https://img/x.jpg", meta.Thumbnail)
	assert.Equal(t, "video123", meta.ID)
	assert.Equal(t, filepath.Join(dir, "audio.mp3"), audioPath)
	assert.FileExists(t, audioPath)
}

func TestDownloadAudioNoAudioFile(t *testing.T) {
	bin := fakeYtDlp(t, infoJSON, false, 0)

	d := NewYtDlp(bin, "mp3", "64K", zerolog.Nop())
	meta, audioPath, err := d.DownloadAudio(context.Background(), "https://example.com/video123", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Pasta Recipe", meta.Title)
	assert.Empty(t, audioPath)
}

func TestDownloadAudioOtherFormat(t *testing.T) {
	bin := fakeYtDlp(t, infoJSON, true, 0)
	dir := t.TempDir()

	d := NewYtDlp(bin, "m4a", "5", zerolog.Nop())
	_, audioPath, err := d.DownloadAudio(context.Background(), "https://example.com/video123", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "audio.m4a"), audioPath)
}

func TestDownloadAudioFailure(t *testing.T) {
	bin := fakeYtDlp(t, "", false, 1)

	d := NewYtDlp(bin, "mp3", "64K", zerolog.Nop())
	_, _, err := d.DownloadAudio(context.Background(), "https://example.com/nope", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yt-dlp failed")
	assert.Contains(t, err.Error(), "Unsupported URL")
}

func TestDownloadAudioNoMetadata(t *testing.T) {
	bin := fakeYtDlp(t, "", true, 0)

	d := NewYtDlp(bin, "mp3", "64K", zerolog.Nop())
	_, _, err := d.DownloadAudio(context.Background(), "https://example.com/video123", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no metadata")
}

func TestDownloadAudioMissingBinary(t *testing.T) {
	d := NewYtDlp(filepath.Join(t.TempDir(), "missing-yt-dlp"), "mp3", "64K", zerolog.Nop())
	_, _, err := d.DownloadAudio(context.Background(), "https://example.com/video123", t.TempDir())
	assert.Error(t, err)
}
