package server

import (
	"net/http"
	"slices"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"

	"github.com/at-ishikawa/flashcards/internal/api/v1/apiv1connect"
)

// NewRouter serves the review service next to a health endpoint.
func NewRouter(handler apiv1connect.ReviewServiceHandler, allowedOrigins []string, opts ...connect.HandlerOption) http.Handler {
	r := chi.NewRouter()
	r.Use(corsMiddleware(allowedOrigins))

	r.Get("/healthz", handleHealth)

	path, h := apiv1connect.NewReviewServiceHandler(handler, opts...)
	r.Mount(path, h)
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && slices.Contains(allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
				w.Header().Set("Access-Control-Max-Age", "3600")
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
