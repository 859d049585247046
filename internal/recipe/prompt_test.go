package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jamesfarrell.me/video-to-recipe/internal/models"
)

func TestBuildContext(t *testing.T) {
	meta := models.VideoMetadata{Title: "Pasta Recipe", Description: "yum"}

	got := BuildContext(meta, "boil pasta for ten minutes")
	assert.Equal(t, "Title: Pasta Recipe\n\nCaption/Description: yum\n\nSpoken audio transcript: boil pasta for ten minutes", got)

	empty := BuildContext(meta, "")
	assert.True(t, strings.HasSuffix(empty, "Spoken audio transcript: "))
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Title: Pasta Recipe")

	assert.True(t, strings.HasPrefix(prompt, "Extract the recipe from this TikTok video."))
	assert.Contains(t, prompt, "- prep_time (string or null)")
	assert.Contains(t, prompt, `If no recipe is found, return {"error": "No recipe found"}.`)
	assert.Contains(t, prompt, "Return only valid JSON, no markdown.")
	assert.True(t, strings.HasSuffix(prompt, "Video info:\nTitle: Pasta Recipe"))
}

func TestParseResult(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		check   func(t *testing.T, r models.RecipeResult)
	}{
		{
			name: "recipe",
			raw:  `{"name":"Pasta","ingredients":["pasta","water"],"prep_time":null}`,
			check: func(t *testing.T, r models.RecipeResult) {
				assert.Equal(t, "Pasta", r["name"])
				assert.Equal(t, []any{"pasta", "water"}, r["ingredients"])
				v, ok := r["prep_time"]
				assert.True(t, ok)
				assert.Nil(t, v)
			},
		},
		{
			name: "no recipe",
			raw:  `{"error": "No recipe found"}`,
			check: func(t *testing.T, r models.RecipeResult) {
				msg, ok := r.NotFound()
				assert.True(t, ok)
				assert.Equal(t, "No recipe found", msg)
			},
		},
		{name: "markdown fenced", raw: "```json\n{\"name\":\"Pasta\"}\n```", wantErr: true},
		{name: "truncated", raw: `{"name":"Pas`, wantErr: true},
		{name: "array", raw: `["pasta"]`, wantErr: true},
		{name: "null", raw: `null`, wantErr: true},
		{name: "empty", raw: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseResult(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, r)
		})
	}
}
