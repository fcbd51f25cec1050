package gateway

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/postsync/cli/logging"
	"github.com/postsync/cli/metrics"
)

// transport logs and measures every forge round trip.
type transport struct {
	base http.RoundTripper
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	endpoint := endpointOf(req.URL.Path)
	logger := logging.WithContext(req.Context())

	resp, err := t.base.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordForgeRequest(endpoint, "error", duration)
		logger.Debug("forge request failed",
			logging.String("method", req.Method),
			logging.String("endpoint", endpoint),
			logging.Err(err),
			logging.Duration("duration", duration),
		)
		return nil, err
	}

	metrics.RecordForgeRequest(endpoint, strconv.Itoa(resp.StatusCode), duration)
	logger.Debug("forge request",
		logging.String("method", req.Method),
		logging.String("path", req.URL.Path),
		logging.String("endpoint", endpoint),
		logging.Int("status", resp.StatusCode),
		logging.String("rate_remaining", resp.Header.Get("X-RateLimit-Remaining")),
		logging.Duration("duration", duration),
	)
	return resp, nil
}

// endpointOf reduces a request path to a low-cardinality label.
func endpointOf(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		switch s {
		case "graphql":
			return "graphql"
		case "compare", "contents", "releases":
			return s
		case "git":
			if i+1 < len(segments) {
				return segments[i+1]
			}
		}
	}
	return "other"
}
