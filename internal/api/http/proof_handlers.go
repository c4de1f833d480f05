package http

import (
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campus-conduct/drl-server/internal/sheet"
	"github.com/campus-conduct/drl-server/internal/storage"
)

const maxProofSize = 5 << 20 // 5MB, matching the form's client-side limit

// POST /sheets/{studentID}/{periodID}/proofs/{criterionID}
// Stores the uploaded image and records its reference on the sheet.
func UploadProofHandler(svc *sheet.Service, bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := chi.URLParam(r, "studentID")
		periodID := chi.URLParam(r, "periodID")
		criterionID := chi.URLParam(r, "criterionID")

		r.Body = http.MaxBytesReader(w, r.Body, maxProofSize)
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		ext := strings.ToLower(path.Ext(hdr.Filename))
		key := "proofs/" + studentID + "/" + periodID + "/" + criterionID + "_" + uuid.NewString()[:8] + ext
		if _, err := bs.Put(key, f); err != nil {
			http.Error(w, "store error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		url := "/assets/" + key
		actor := actorFrom(r)
		sh, err := svc.SetProof(r.Context(), actor, studentID, periodID, criterionID, url)
		if err != nil {
			_ = bs.Delete(key) // roll back the orphaned object
			writeErr(w, err)
			return
		}
		writeJSON(w, map[string]any{"url": url, "sheet": sheet.Redacted(sh, actor.Role)})
	}
}

// DELETE /sheets/{studentID}/{periodID}/proofs/{criterionID}
func DeleteProofHandler(svc *sheet.Service, bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFrom(r)
		sh, old, err := svc.RemoveProof(r.Context(), actor,
			chi.URLParam(r, "studentID"), chi.URLParam(r, "periodID"), chi.URLParam(r, "criterionID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if key := strings.TrimPrefix(old, "/assets/"); key != "" && key != old {
			_ = bs.Delete(key) // reference is gone either way; object removal is best-effort
		}
		writeJSON(w, sheet.Redacted(sh, actor.Role))
	}
}

// MountAssets serves stored proof images.
// GET /assets/*  -> returns the blob at whatever follows /assets/
func MountAssets(r chi.Router, bs storage.BlobStore) {
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		rc, err := bs.Get(key)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = io.Copy(w, rc)
	})
}
