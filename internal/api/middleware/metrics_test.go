package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StoreAvailability/pkg/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry(), "test")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/store/hours", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/store/status", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}).Methods(http.MethodGet)

	for _, path := range []string{"/api/v1/store/hours", "/api/v1/store/status?x=1", "/api/v1/store/status?x=2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/store/hours", "503")))
	assert.Equal(t, float64(2), testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/store/status", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration))
}
