package page

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	appdir "userdir/internal/app/directory"
	"userdir/internal/logging"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// loadingRefreshSeconds is how often the loading page polls.
const loadingRefreshSeconds = 1

type pageData struct {
	Refresh int
	View    *appdir.Snapshot
}

// Handler serves the HTML rendition of a view. Every button posts an event
// and redirects back, so the page works without scripts.
type Handler struct {
	views  appdir.Service
	logger logging.Logger
}

func NewHandler(views appdir.Service, logger logging.Logger) *Handler {
	return &Handler{
		views:  views,
		logger: logger.With("component", "page_handler"),
	}
}

// Index GET / mounts a fresh view.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	v, err := h.views.Mount(r.Context())
	if err != nil {
		h.logger.Error("failed to mount view", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	http.Redirect(w, r, viewPath(v.ID()), http.StatusSeeOther)
}

// Show GET /directory/{id}; a q parameter replaces the search term.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	var snap appdir.Snapshot
	if q := r.URL.Query(); q.Has("q") {
		snap = v.SetSearch(q.Get("q"))
	} else {
		snap = v.Snapshot()
	}

	if snap.Loading {
		h.render(w, http.StatusOK, "loading", pageData{Refresh: loadingRefreshSeconds})
		return
	}
	h.render(w, http.StatusOK, "directory", pageData{View: &snap})
}

// Sort POST /directory/{id}/sort/{key}
func (h *Handler) Sort(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	key, err := appdir.ParseSortKey(chi.URLParam(r, "key"))
	if err != nil {
		http.Error(w, "unknown column", http.StatusBadRequest)
		return
	}

	v.RequestSort(key)
	h.back(w, r, v)
}

// Next POST /directory/{id}/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	v.NextPage()
	h.back(w, r, v)
}

// Prev POST /directory/{id}/prev
func (h *Handler) Prev(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	v.PrevPage()
	h.back(w, r, v)
}

func (h *Handler) back(w http.ResponseWriter, r *http.Request, v *appdir.View) {
	http.Redirect(w, r, viewPath(v.ID()), http.StatusSeeOther)
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) (*appdir.View, bool) {
	v, err := h.views.Get(chi.URLParam(r, "id"))
	if err != nil {
		if !appdir.IsNotFound(err) {
			h.logger.Error("failed to get view", "error", err)
		}
		h.render(w, http.StatusNotFound, "notfound", pageData{})
		return nil, false
	}
	return v, true
}

// render executes into a buffer first so a template error never leaves a
// half-written page.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data pageData) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("failed to render page", "error", err, "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func viewPath(id string) string {
	return "/directory/" + id
}
