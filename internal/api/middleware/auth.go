package middleware

import (
	"crypto/subtle"
	"net/http"

	"jamesfarrell.me/video-to-recipe/internal/api/response"
)

// APIKey rejects requests whose X-API-Key header does not match secret.
// A missing header never matches.
func APIKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("X-API-Key")
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(secret)) != 1 {
				response.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
