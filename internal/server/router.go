package server

import (
	"net/http"

	"vprompt-web/internal/builder"
	"vprompt-web/internal/metrics"
	"vprompt-web/internal/server/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter は、ミドルウェアとルーティングを統合した http.Handler を構築します。
func NewRouter(h *builder.AppHandlers) http.Handler {
	r := chi.NewRouter()

	setupCommonMiddleware(r)
	setupRoutes(r, h.API)

	return r
}

func setupCommonMiddleware(r *chi.Mux) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
	r.Use(metrics.Middleware)
}

func setupRoutes(r chi.Router, api *handlers.Handler) {
	// --- 運用ルート ---
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// --- セッション API ---
	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", api.CreateSession)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", api.GetSession)
			r.Delete("/", api.DeleteSession)
			r.Put("/inputs", api.UpdateInputs)
			r.Post("/generate", api.Generate)
			r.Post("/reset", api.Reset)
			r.Post("/suggestions", api.SuggestBatch)
			r.Post("/suggestions/{field}", api.Suggest)
			r.Post("/history/{itemID}/reuse", api.ReuseHistory)
		})
	})
}
