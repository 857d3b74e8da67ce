package http

import (
	"net/http"
	"slices"
)

// withCORS handles cross-origin requests for the configured allowed
// origins. Preflight OPTIONS requests are answered directly; other
// requests pass through with the CORS headers attached. Requests from
// origins that are not allowed pass through untouched: the browser
// enforces the missing headers.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || !h.originAllowed(origin) {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) originAllowed(origin string) bool {
	return slices.Contains(h.cfg.AllowedOrigins, "*") ||
		slices.Contains(h.cfg.AllowedOrigins, origin)
}
