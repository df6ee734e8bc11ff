package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"curator/pkg/controller"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/stretchr/testify/require"
)

func TestWithMetrics_RecordsRequestDuration(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/path", nil)
	rec := httptest.NewRecorder()

	controller.WithMetrics(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusTeapot, rec.Result().StatusCode)

	count, err := testutil.GatherAndCount(prometheus.DefaultGatherer,
		"http_request_duration_seconds")
	require.NoError(t, err)
	require.Positive(t, count)
}
