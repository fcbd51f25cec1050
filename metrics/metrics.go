// Package metrics exposes Prometheus collectors for forge traffic, the blob
// cache and the local server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	forgeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postsync_forge_requests_total",
			Help: "Total number of requests sent to the forge API",
		},
		[]string{"endpoint", "status"},
	)

	forgeRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postsync_forge_request_duration_seconds",
			Help:    "Forge API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postsync_cache_lookups_total",
			Help: "Blob cache lookups by result",
		},
		[]string{"store", "result"},
	)

	cacheErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postsync_cache_errors_total",
			Help: "Blob cache store failures",
		},
		[]string{"store", "operation"},
	)

	blobsWrittenTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "postsync_blobs_written_total",
			Help: "Blobs written to disk by pull",
		},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postsync_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postsync_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordForgeRequest records one forge call. status is the HTTP status code,
// or "error" when no response was received.
func RecordForgeRequest(endpoint string, status string, duration time.Duration) {
	forgeRequestsTotal.WithLabelValues(endpoint, status).Inc()
	forgeRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func RecordCacheLookup(store string, hit bool) {
	result := "hit"
	if !hit {
		result = "miss"
	}
	cacheLookupsTotal.WithLabelValues(store, result).Inc()
}

func RecordCacheError(store string, operation string) {
	cacheErrorsTotal.WithLabelValues(store, operation).Inc()
}

func RecordBlobWritten() {
	blobsWrittenTotal.Inc()
}

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
