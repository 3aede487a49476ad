package api

import (
	"net/http"

	app_errors "bariatric-gpt/backend/internal/errors"
)

// RequireServiceKey guards backend-only routes (the memory store) behind a
// shared service credential. Only backend callers hold the key; end-user
// clients never read memory directly.
func RequireServiceKey(serviceKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if serviceKey == "" || r.Header.Get("X-Service-Key") != serviceKey {
				respondWithError(w, app_errors.ErrPermission)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
