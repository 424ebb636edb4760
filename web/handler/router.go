package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"rocket-stove/internal/logger"
	"rocket-stove/internal/metrics"
)

// NewRouter binds the catalog page to GET / next to the health and metrics
// endpoints.
func NewRouter(page http.Handler, log logger.Logger, m *metrics.Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, Access(log, m))

	r.Handle("/", page).Methods(http.MethodGet)
	r.HandleFunc("/healthz", Health).Methods(http.MethodGet)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	return r
}
