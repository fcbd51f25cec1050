package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/postsync/cli/metrics"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesCollectors(t *testing.T) {
	metrics.RecordForgeRequest("blobs", "200", 10*time.Millisecond)
	metrics.RecordCacheLookup("memory", true)
	metrics.RecordCacheError("file", "put")
	metrics.RecordBlobWritten()
	metrics.RecordHTTPRequest(http.MethodGet, "/tree/{sha}", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	for _, name := range []string{
		`postsync_forge_requests_total{endpoint="blobs",status="200"}`,
		`postsync_cache_lookups_total{result="hit",store="memory"}`,
		`postsync_cache_errors_total{operation="put",store="file"}`,
		`postsync_blobs_written_total`,
		`postsync_http_requests_total{method="GET",route="/tree/{sha}",status="200"}`,
	} {
		require.True(t, strings.Contains(body, name), name)
	}
}
