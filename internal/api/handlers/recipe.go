package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"jamesfarrell.me/video-to-recipe/internal/api/response"
	"jamesfarrell.me/video-to-recipe/internal/models"
)

// maxBodyBytes bounds the /extract request body.
const maxBodyBytes = 1 << 20

// Pipeline runs a recipe extraction for a video URL.
type Pipeline interface {
	Run(ctx context.Context, videoURL string) (models.RecipeResult, error)
}

type RecipeHandler struct {
	pipeline Pipeline
}

func NewRecipeHandler(p Pipeline) *RecipeHandler {
	return &RecipeHandler{pipeline: p}
}

// Extract handles POST /extract. Any pipeline failure is reported as a 500
// carrying the error message.
func (h *RecipeHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req models.ExtractionRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil || req.URL == "" {
		response.WriteError(w, http.StatusBadRequest, "No URL provided")
		return
	}

	result, err := h.pipeline.Run(r.Context(), req.URL)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("url", req.URL).Msg("recipe extraction failed")
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}
