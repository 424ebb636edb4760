package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocket-stove/internal/metrics"
)

func TestObserveLoad(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.ObserveLoad(time.Millisecond, 3, nil)
	m.ObserveLoad(time.Millisecond, 0, errors.New("boom"))

	assert.InDelta(t, 1, testutil.ToFloat64(m.CatalogLoads.WithLabelValues(metrics.ResultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CatalogLoads.WithLabelValues(metrics.ResultError)), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.CatalogEntries), 0)
}

func TestObserveRequest(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/", "200")), 0)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.ObserveLoad(time.Millisecond, 2, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rocket_stove_catalog_loads_total")
	assert.Contains(t, rec.Body.String(), "rocket_stove_catalog_entries 2")
}
