// Package server exposes the fetch client to a CMS over local HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/go-github/github"
	"github.com/postsync/cli/controller"
	"github.com/postsync/cli/logging"
	"github.com/postsync/cli/metrics"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	ctrl *controller.Controller
	mux  *http.ServeMux
}

func New(ctrl *controller.Controller) *Server {
	s := &Server{
		ctrl: ctrl,
		mux:  http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.handle("GET /healthz", s.handleHealth)
	s.handle("GET /compare/{sha}", s.handleCompare)
	s.handle("GET /tree/{sha}", s.handleTree)
	s.handle("GET /blobs/{sha}", s.handleBlob)
	s.handle("POST /blobs", s.handleBlobs)
	s.handle("GET /exists", s.handleExists)
	s.handle("GET /contents", s.handleContents)
	s.handle("GET /urls", s.handleURLs)
	s.mux.Handle("GET /metrics", metrics.Handler())
}

// handle registers fn and records request metrics under the route pattern.
func (s *Server) handle(pattern string, fn http.HandlerFunc) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		fn(rec, r)
		metrics.RecordHTTPRequest(r.Method, pattern, rec.status, time.Since(start))
	})
}

func (s *Server) Handler() http.Handler {
	return logging.Middleware(s.mux)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("server listening", logging.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logging.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

// writeForgeError reports a failed forge call as 502, carrying the forge
// status when there was one.
func writeForgeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error()}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		resp.Status = ghErr.Response.StatusCode
		resp.Error = ghErr.Message
	}
	logging.WithContext(r.Context()).Warn("forge request failed",
		logging.String("path", r.URL.Path),
		logging.Err(err),
	)
	writeJSON(w, http.StatusBadGateway, resp)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
