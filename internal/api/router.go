package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/dagaz/internal/index"
	"github.com/starford/dagaz/internal/settings"
	"github.com/starford/dagaz/internal/storage"
	"github.com/starford/dagaz/internal/summarizer"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(store storage.Provider, db index.NoteIndex, svc *summarizer.Service, st *settings.Store, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(store, db, svc, st)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Notes (read-only; the vault stays editor-owned).
	r.Get("/notes", h.ListNotes)
	r.Get("/notes/*", h.GetNote)

	// Search.
	r.Get("/search", h.Search)

	// Summary generation.
	r.Get("/summary/window", h.SummaryWindow)
	r.Post("/summary", h.CreateSummary)

	// Summary settings.
	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.UpdateSettings)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
