package handlers

import (
	"net/http"

	"jamesfarrell.me/video-to-recipe/internal/api/response"
)

func Health(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
