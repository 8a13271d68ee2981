package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/checksum"
	"github.com/starford/dagaz/internal/editor"
	"github.com/starford/dagaz/internal/index"
	"github.com/starford/dagaz/internal/parser"
	"github.com/starford/dagaz/internal/settings"
	"github.com/starford/dagaz/internal/storage"
	"github.com/starford/dagaz/internal/summarizer"
)

// Handler holds API route handlers.
type Handler struct {
	store    storage.Provider
	db       index.NoteIndex
	svc      *summarizer.Service
	settings *settings.Store
}

// NewHandler creates a new Handler.
func NewHandler(store storage.Provider, db index.NoteIndex, svc *summarizer.Service, st *settings.Store) *Handler {
	return &Handler{store: store, db: db, svc: svc, settings: st}
}

// notePath extracts the note path from the URL (everything after /api/notes/).
// Supports encoded slashes from OpenAPI clients (e.g. daily%2F2025-06-02.md).
func notePath(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListNotes handles GET /api/notes.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	sort := q.Get("sort")

	rows, total, err := h.db.ListNotes(limit, offset, sort)
	if err != nil {
		slog.Error("list notes failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	items := make([]NoteListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, NoteListItem{
			Path:      row.Path,
			Title:     row.Title,
			Checksum:  row.Checksum,
			UpdatedAt: row.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, NoteListResponse{Notes: items, Total: total})
}

// GetNote handles GET /api/notes/*.
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	path := notePath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	data, err := h.store.Read(path)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		slog.Error("parse note failed", slog.String("path", path), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, NoteDetail{
		Path:        path,
		Title:       parsed.Title,
		Checksum:    checksum.Sum(data),
		Content:     string(data),
		Frontmatter: parsed.Frontmatter,
	})
}

// Search handles GET /api/search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	hits, err := h.db.Search(q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, SearchResult{Path: hit.Path, Title: hit.Title, Snippet: hit.Snippet})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
	})
}

// SummaryWindow handles GET /api/summary/window. It previews the notes the
// next summary would cover without calling the generation backend.
func (h *Handler) SummaryWindow(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	records, err := h.svc.Window(r.Context(), days)
	if err != nil {
		slog.Error("window preview failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	notes := make([]WindowNote, 0, len(records))
	seen := map[string]struct{}{}
	for _, rec := range records {
		notes = append(notes, WindowNote{Path: rec.Path, Day: rec.Day, Distilled: rec.Distilled})
		seen[rec.Day] = struct{}{}
	}
	writeJSON(w, http.StatusOK, WindowResponse{Notes: notes, Days: len(seen)})
}

// CreateSummary handles POST /api/summary. It runs one full insertion
// invocation against the named note and returns the resulting content.
func (h *Handler) CreateSummary(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Note == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("note is required"))
		return
	}

	var at *editor.Position
	if req.Line != nil {
		pos := editor.Position{Line: *req.Line}
		if req.Ch != nil {
			pos.Ch = *req.Ch
		}
		at = &pos
	}

	ed, err := editor.NewFileEditor(h.store, req.Note, at)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("open note failed", slog.String("note", req.Note), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}

	if err := h.svc.Run(r.Context(), ed, req.Note, req.Days); err != nil {
		switch {
		case errors.Is(err, apperr.ErrMissingCredential):
			writeJSON(w, http.StatusPreconditionFailed, errorBody("summary API key is not configured"))
		case errors.Is(err, apperr.ErrNoNotes):
			writeJSON(w, http.StatusUnprocessableEntity, errorBody("no notes found in the lookback window"))
		case errors.Is(err, apperr.ErrTransport), errors.Is(err, apperr.ErrBadResponse):
			writeJSON(w, http.StatusBadGateway, errorBody("summary generation failed"))
		default:
			slog.Error("summary failed", slog.String("note", req.Note), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{Note: req.Note, Content: ed.Content()})
}

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, settingsBody(h.settings.Snapshot()))
}

// UpdateSettings handles PUT /api/settings. Absent fields keep their
// current values; an invalid result rejects the whole update.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req SettingsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	updated, err := h.settings.Update(func(s *settings.Summary) {
		if req.DaysToLookBack != nil {
			s.DaysToLookBack = *req.DaysToLookBack
		}
		if req.APIKey != nil {
			s.APIKey = *req.APIKey
		}
		if req.APIURL != nil {
			s.APIURL = *req.APIURL
		}
		if req.Model != nil {
			s.Model = *req.Model
		}
		if req.NotePattern != nil {
			s.NotePattern = *req.NotePattern
		}
		if req.CalloutType != nil {
			s.CalloutType = *req.CalloutType
		}
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, settingsBody(updated))
}

func settingsBody(s settings.Summary) SettingsResponse {
	return SettingsResponse{
		DaysToLookBack: s.DaysToLookBack,
		APIKeySet:      s.APIKey != "",
		APIURL:         s.APIURL,
		Model:          s.Model,
		NotePattern:    s.NotePattern,
		CalloutType:    s.CalloutType,
	}
}
