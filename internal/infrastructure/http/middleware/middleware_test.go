package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_LabelsUseRoutePattern(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	router := chi.NewRouter()
	router.Use(m.Handler())
	router.Get("/recipes/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/recipes/pancakes", "/recipes/beef%20stew"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	families, err := registry.Gather()
	require.NoError(t, err)

	var checked bool
	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}

		// Both requests collapse into one series under the pattern
		require.Len(t, family.GetMetric(), 1)
		metric := family.GetMetric()[0]
		assert.Equal(t, 2.0, metric.GetCounter().GetValue())

		for _, label := range metric.GetLabel() {
			if label.GetName() == "path" {
				assert.Equal(t, "/recipes/{name}", label.GetValue())
				checked = true
			}
		}
	}
	require.True(t, checked)
}
