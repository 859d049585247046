package recipe

import (
	"encoding/json"
	"errors"
	"fmt"

	"jamesfarrell.me/video-to-recipe/internal/models"
)

const promptTemplate = `Extract the recipe from this TikTok video. Return a JSON object with:
- name (string)
- description (one sentence, string)
- ingredients (list of strings)
- steps (list of strings)
- prep_time (string or null)
- cook_time (string or null)
- servings (string or null)

If no recipe is found, return {"error": "No recipe found"}.
Return only valid JSON, no markdown.

Video info:
%s`

// BuildContext joins the video metadata and transcript into the text the
// model reads. An empty transcript still produces its label.
func BuildContext(meta models.VideoMetadata, transcript string) string {
	return fmt.Sprintf("Title: %s\n\nCaption/Description: %s\n\nSpoken audio transcript: %s",
		meta.Title, meta.Description, transcript)
}

func BuildPrompt(videoContext string) string {
	return fmt.Sprintf(promptTemplate, videoContext)
}

// ParseResult decodes the model output, which must be a single JSON object.
func ParseResult(raw string) (models.RecipeResult, error) {
	var result models.RecipeResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("decode recipe JSON: %w", err)
	}
	if result == nil {
		return nil, errors.New("decode recipe JSON: expected an object, got null")
	}
	return result, nil
}
