package controller_test

import (
	"fortune/pkg/controller"
	"fortune/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler { return controller.WithMetrics(m, next) })
	r.Get("/v1/users/{username}/fortune-history", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/v1/users/alice/fortune-history", "/v1/users/bob/fortune-history", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, 2, testutil.CollectAndCount(m.Duration))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)

	counts := map[string]uint64{}
	for _, metric := range families[0].GetMetric() {
		for _, label := range metric.GetLabel() {
			if label.GetName() == "route" {
				counts[label.GetValue()] = metric.GetHistogram().GetSampleCount()
			}
		}
	}
	require.Equal(t, map[string]uint64{
		"/v1/users/{username}/fortune-history": 2,
		"unmatched":                            1,
	}, counts)
}

func TestNewHTTP_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewHTTP(reg)
	require.NoError(t, err)
	_, err = metrics.NewHTTP(reg)
	require.Error(t, err)
}
