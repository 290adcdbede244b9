// internal/web/uploads.go
//
// Multipart staging endpoint.  Files post to their field's manager;
// validation messages come back per field, staged records as JSON.

package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MS250871/my-saas-demo/internal/upload"
)

// 12 MB request cap: five 2 MB files plus multipart overhead.
const maxUploadBody = 12 << 20

// stageUploads handles POST /api/uploads/{field}.
func (s *Server) stageUploads(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")
	mgr := s.uploads.Get(field)
	if mgr == nil {
		writeError(w, http.StatusNotFound, "unknown upload field")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBody); err != nil {
		writeError(w, http.StatusBadRequest, "malformed multipart body")
		return
	}

	var files []upload.File
	for _, hdr := range r.MultipartForm.File["files"] {
		src, err := hdr.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable file part")
			return
		}
		content, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable file part")
			return
		}
		files = append(files, upload.File{Name: hdr.Filename, Content: content})
	}
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "no files posted")
		return
	}

	staged, msgs, err := mgr.Stage(r.Context(), files)
	if errors.Is(err, upload.ErrBusy) {
		writeError(w, http.StatusConflict, "field is busy staging files")
		return
	}
	if err != nil {
		// Partial success: earlier records in the batch are staged.
		s.log.Errorw("upload staging failed", "field", field, "err", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"staged": staged,
			"error":  "upload failed; already-staged files were kept",
		})
		return
	}
	if len(msgs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"messages": msgs})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"staged": staged})
}

// listUploads handles GET /api/uploads/{field}.
func (s *Server) listUploads(w http.ResponseWriter, r *http.Request) {
	mgr := s.uploads.Get(chi.URLParam(r, "field"))
	if mgr == nil {
		writeError(w, http.StatusNotFound, "unknown upload field")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"files": mgr.Snapshot()})
}

// removeUpload handles DELETE /api/uploads/{field}/{id}.  The record
// flips to deleting and leaves the list after the settling delay.
func (s *Server) removeUpload(w http.ResponseWriter, r *http.Request) {
	mgr := s.uploads.Get(chi.URLParam(r, "field"))
	if mgr == nil {
		writeError(w, http.StatusNotFound, "unknown upload field")
		return
	}
	if err := mgr.Remove(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "deleting"})
}
