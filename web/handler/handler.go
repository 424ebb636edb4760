// Package handler serves the catalog page and the operational endpoints.
package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"rocket-stove/internal/catalog"
	"rocket-stove/internal/logger"
	"rocket-stove/internal/metrics"
)

//go:embed templates/*.html
var Templates embed.FS

const pageTemplate = "index.html"

// Loader provides the catalog for a single request. Implementations must
// return structures the caller may keep without affecting other requests.
type Loader interface {
	Load() (*catalog.Catalog, error)
}

// PageData is what the page template receives.
type PageData struct {
	Titles []string
	URLs   map[string][]string
}

// ParseTemplates parses the embedded page templates.
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(Templates, "templates/*.html")
}

// CatalogHandler renders the catalog page for GET /.
type CatalogHandler struct {
	loader  Loader
	tmpl    *template.Template
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewCatalogHandler creates the page handler.
func NewCatalogHandler(loader Loader, tmpl *template.Template, log logger.Logger, m *metrics.Metrics) *CatalogHandler {
	return &CatalogHandler{
		loader:  loader,
		tmpl:    tmpl,
		log:     log,
		metrics: m,
	}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(logger.String("request_id", RequestIDFromContext(r.Context())))

	start := time.Now()
	c, err := h.loader.Load()
	if err != nil {
		h.metrics.ObserveLoad(time.Since(start), 0, err)
		log.Error("Failed to load catalog", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.metrics.ObserveLoad(time.Since(start), c.Len(), nil)

	// Render fully before writing so a template failure never yields a partial page.
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, pageTemplate, PageData{Titles: c.Titles, URLs: c.URLs}); err != nil {
		log.Error("Failed to render catalog", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn("Failed to write response", logger.Error(err))
	}
}

// Health answers liveness probes.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
