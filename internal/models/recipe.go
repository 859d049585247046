package models

import (
	"net/url"
	"strings"
)

// Keys merged into every successful extraction result.
const (
	FieldThumbnailURL = "thumbnail_url"
	FieldSourceURL    = "source_url"
	FieldVideoTitle   = "video_title"
)

type ExtractionRequest struct {
	URL string `json:"url"`
}

// VideoMetadata is the subset of the media fetcher's info document the
// service reads. ID and WebpageURL are only used for logging.
type VideoMetadata struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	WebpageURL  string `json:"webpage_url"`
}

// RecipeResult is the JSON object returned by the recipe extractor. It is
// kept as a map so keys the model adds, and the {"error": ...} form, pass
// through to the client untouched.
type RecipeResult map[string]any

// Augment sets the source fields on the result, replacing any values the
// extractor may have produced under the same keys.
func (r RecipeResult) Augment(meta VideoMetadata, sourceURL string) {
	r[FieldThumbnailURL] = meta.Thumbnail
	r[FieldSourceURL] = sourceURL
	r[FieldVideoTitle] = meta.Title
}

// NotFound reports the extractor's error message when it did not find a
// recipe in the video.
func (r RecipeResult) NotFound() (string, bool) {
	msg, ok := r["error"].(string)
	return msg, ok
}

// VideoID pulls a short identifier out of a video page URL for log lines.
// It understands youtube watch/shorts links, youtu.be and tiktok video
// links, and falls back to the last path segment.
func VideoID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}

	if v := u.Query().Get("v"); v != "" {
		return v
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, s := range segments {
		if (s == "video" || s == "shorts") && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	return segments[len(segments)-1]
}
