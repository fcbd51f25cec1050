package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-github/github"
	"github.com/postsync/cli/cache"
	"github.com/postsync/cli/controller"
	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/logging"
	"github.com/postsync/cli/server"
	"github.com/stretchr/testify/require"
)

type stubForge struct {
	err error
}

func (f *stubForge) Compare(_ context.Context, base string, head string) ([]*entity.CommitFile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*entity.CommitFile{{SHA: "b1", Filename: "_posts/a.md", Status: "modified"}}, nil
}

func (f *stubForge) Contents(_ context.Context, path string) (*entity.Content, error) {
	if f.err != nil {
		return nil, f.err
	}
	if path == "missing.md" {
		return nil, errors.New("not found")
	}
	return &entity.Content{Type: "file", Path: path, Content: "hello"}, nil
}

func (f *stubForge) Tree(_ context.Context, sha string, recursive bool) ([]*entity.TreeEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*entity.TreeEntry{
		{SHA: "d1", Path: "_posts", Type: "tree"},
		{SHA: "b1", Path: "_posts/a.md", Type: "blob"},
	}, nil
}

func (f *stubForge) Blob(_ context.Context, sha string) (*entity.Blob, error) {
	if f.err != nil {
		return nil, f.err
	}
	if sha == "bad" {
		return nil, errors.New("boom")
	}
	return &entity.Blob{SHA: sha, Content: "content of " + sha}, nil
}

func (f *stubForge) ListDirectory(context.Context, *entity.DirectoryRequest) ([]*entity.DirEntry, error) {
	return nil, f.err
}

func newServer(forge controller.Forge) http.Handler {
	ctrl := controller.New(forge, cache.New("memory", cache.NewMemoryStore()), &entity.RepoConfig{
		Owner:      "octo",
		Repository: "blog",
		Branch:     "main",
	})
	return server.New(ctrl).Handler()
}

func do(t *testing.T, h http.Handler, method string, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.NotEmpty(t, rec.Header().Get(logging.RequestIDHeader))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestRoutes(t *testing.T) {
	h := newServer(&stubForge{})

	t.Run("healthz", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/healthz", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var out map[string]string
		decode(t, rec, &out)
		require.Equal(t, "octo/blog", out["repository"])
	})

	t.Run("compare", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/compare/abc123", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var out []*entity.FileInfo
		decode(t, rec, &out)
		require.Equal(t, []*entity.FileInfo{{SHA: "b1", Path: "_posts/a.md", Status: "modified"}}, out)
	})

	t.Run("tree keeps blobs only", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/tree/root", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var out []*entity.FileInfo
		decode(t, rec, &out)
		require.Equal(t, []*entity.FileInfo{{SHA: "b1", Path: "_posts/a.md"}}, out)
	})

	t.Run("blob", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/blobs/b1?path=_posts/a.md", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var out entity.Blob
		decode(t, rec, &out)
		require.Equal(t, "_posts/a.md", out.Path)
		require.Equal(t, "content of b1", out.Content)
	})

	t.Run("blobs batch skips failures", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/blobs", `[{"sha":"b1","path":"a.md"},{"sha":"bad","path":"b.md"}]`)
		require.Equal(t, http.StatusOK, rec.Code)
		var out []*entity.Blob
		decode(t, rec, &out)
		require.Len(t, out, 1)
		require.Equal(t, "a.md", out[0].Path)
	})

	t.Run("blobs batch rejects garbage", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/blobs", `{"sha":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("blobs batch rejects null entries", func(t *testing.T) {
		for _, body := range []string{`[null]`, `[{"sha":"b1"},null]`, `[{"path":"a.md"}]`, `[{"sha":"../b1"}]`} {
			rec := do(t, h, http.MethodPost, "/blobs", body)
			require.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
	})

	t.Run("blob rejects path-like shas", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/blobs/..%2F..%2Fetc%2Fpasswd", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("exists", func(t *testing.T) {
		var out map[string]interface{}
		rec := do(t, h, http.MethodGet, "/exists?path=index.md", "")
		decode(t, rec, &out)
		require.Equal(t, true, out["exists"])

		rec = do(t, h, http.MethodGet, "/exists?path=missing.md", "")
		decode(t, rec, &out)
		require.Equal(t, false, out["exists"])

		rec = do(t, h, http.MethodGet, "/exists", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("contents by post fields", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/contents?name=about&type=page", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var out entity.Content
		decode(t, rec, &out)
		require.Equal(t, "_pages/about.md", out.Path)
	})

	t.Run("contents needs a path or name", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/contents", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var out map[string]string
		decode(t, rec, &out)
		require.Equal(t, entity.ErrPostNameMissing.Error(), out["error"])
	})

	t.Run("urls", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/urls?name=hello&date=2020-01-02", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var out map[string]string
		decode(t, rec, &out)
		require.Equal(t, "_posts/2020-01-02-hello.md", out["path"])
		require.Equal(t, "https://github.com/octo/blog/edit/main/_posts/2020-01-02-hello.md", out["edit_url"])
		require.Equal(t, `<a href="https://github.com/octo/blog/blob/main/_posts/2020-01-02-hello.md">View this post on GitHub.</a>`, out["view_link"])
	})

	t.Run("metrics", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "postsync_http_requests_total")
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := do(t, h, http.MethodDelete, "/tree/root", "")
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestForgeErrors(t *testing.T) {
	t.Run("Plain errors", func(t *testing.T) {
		h := newServer(&stubForge{err: errors.New("connection refused")})
		rec := do(t, h, http.MethodGet, "/compare/abc", "")
		require.Equal(t, http.StatusBadGateway, rec.Code)

		var out map[string]interface{}
		decode(t, rec, &out)
		require.Equal(t, "connection refused", out["error"])
	})

	t.Run("Forge responses keep their status", func(t *testing.T) {
		ghErr := &github.ErrorResponse{
			Response: &http.Response{
				StatusCode: http.StatusNotFound,
				Request:    &http.Request{Method: http.MethodGet, URL: &url.URL{Path: "/repos/octo/blog/git/trees/x"}},
			},
			Message: "Not Found",
		}
		h := newServer(&stubForge{err: ghErr})
		rec := do(t, h, http.MethodGet, "/tree/x", "")
		require.Equal(t, http.StatusBadGateway, rec.Code)

		var out map[string]interface{}
		decode(t, rec, &out)
		require.Equal(t, "Not Found", out["error"])
		require.EqualValues(t, http.StatusNotFound, out["status"])
	})
}

func TestListenAndServeStopsWithContext(t *testing.T) {
	ctrl := controller.New(&stubForge{}, cache.New("none", cache.NoopStore{}), &entity.RepoConfig{Owner: "octo", Repository: "blog"})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.New(ctrl).ListenAndServe(ctx, "127.0.0.1:0")
	}()
	cancel()
	require.NoError(t, <-done)
}
