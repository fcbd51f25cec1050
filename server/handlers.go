package server

import (
	"encoding/json"
	"net/http"

	"github.com/postsync/cli/entity"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":     "ok",
		"repository": s.ctrl.Repo().FullName(),
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	files, err := s.ctrl.Compare(r.Context(), r.PathValue("sha"))
	if err != nil {
		writeForgeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	files, err := s.ctrl.TreeRecursive(r.Context(), r.PathValue("sha"))
	if err != nil {
		writeForgeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

func (s *Server) handleBlob(w http.ResponseWriter, r *http.Request) {
	sha := r.PathValue("sha")
	if !entity.IsSHA(sha) {
		writeBadRequest(w, "sha must be a hex object id")
		return
	}
	blob, err := s.ctrl.Blob(r.Context(), &entity.FileInfo{
		SHA:  sha,
		Path: r.URL.Query().Get("path"),
	})
	if err != nil {
		writeForgeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, blob)
}

// handleBlobs fetches a batch of blobs. Entries that fail are left out.
func (s *Server) handleBlobs(w http.ResponseWriter, r *http.Request) {
	var infos []*entity.FileInfo
	if err := json.NewDecoder(r.Body).Decode(&infos); err != nil {
		writeBadRequest(w, "body must be a JSON array of {sha, path}")
		return
	}
	for _, info := range infos {
		if info == nil || !entity.IsSHA(info.SHA) {
			writeBadRequest(w, "every entry needs a hex sha")
			return
		}
	}
	writeJSON(w, http.StatusOK, s.ctrl.Blobs(r.Context(), infos))
}

func (s *Server) handleExists(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeBadRequest(w, "path is required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"path":   path,
		"exists": s.ctrl.Exists(r.Context(), path),
	})
}

func (s *Server) handleContents(w http.ResponseWriter, r *http.Request) {
	post, err := postFromQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	content, err := s.ctrl.RemoteContents(r.Context(), post)
	if err != nil {
		writeForgeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (s *Server) handleURLs(w http.ResponseWriter, r *http.Request) {
	post, err := postFromQuery(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	path := post.GitHubPath()
	writeJSON(w, http.StatusOK, map[string]string{
		"path":      path,
		"view_url":  s.ctrl.ViewURL(path),
		"edit_url":  s.ctrl.EditURL(path),
		"view_link": s.ctrl.ViewLink(path),
		"edit_link": s.ctrl.EditLink(path),
	})
}

func postFromQuery(r *http.Request) (*entity.Post, error) {
	q := r.URL.Query()
	return (&entity.PostQuery{
		Path:   q.Get("path"),
		Name:   q.Get("name"),
		Type:   q.Get("type"),
		Status: q.Get("status"),
		Date:   q.Get("date"),
	}).Post()
}
