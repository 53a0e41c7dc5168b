package server

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/evozago/fluxo-e-dre-sub001/internal/ingest"
)

// maxUploadBytes caps the upload manifest body (NFe XMLs are small; a batch
// of a few hundred stays well under this).
const maxUploadBytes = 32 << 20

// uploadManifest mirrors the JSON shape enforced by the upload schema.
type uploadManifest struct {
	Files []struct {
		Filename string `json:"filename"`
		Content  string `json:"content"` // base64-encoded XML
	} `json:"files"`
}

// UploadHandler is the HTTP front end the dashboard posts document batches to.
type UploadHandler struct {
	orchestrator *ingest.Service
	schema       map[string]any
	logger       *slog.Logger
}

func NewUploadHandler(orchestrator *ingest.Service, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		orchestrator: orchestrator,
		schema:       ingest.BuildUploadJSONSchema(),
		logger:       logger,
	}
}

// Router builds the HTTP routes.
func (h *UploadHandler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/api/v1/documents/upload", h.handleUpload)
	return r
}

func (h *UploadHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		h.logger.Error("failed to read upload body", "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to read request body")
		return
	}

	if err := ingest.ValidateJSONAgainstSchema(h.schema, body); err != nil {
		h.logger.Error("upload manifest rejected by schema", "error", err)
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var manifest uploadManifest
	if err := json.Unmarshal(body, &manifest); err != nil {
		h.logger.Error("failed to decode upload manifest", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	uploads := make([]ingest.Upload, 0, len(manifest.Files))
	for _, f := range manifest.Files {
		up := ingest.Upload{Filename: f.Filename}
		// a bad base64 payload fails that file, not the batch
		if data, err := base64.StdEncoding.DecodeString(f.Content); err != nil {
			up.ReadErr = err
		} else {
			up.Content = data
		}
		uploads = append(uploads, up)
	}

	h.logger.Info("http upload batch received", "file_count", len(uploads))
	res := h.orchestrator.ProcessBatch(r.Context(), uploads)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.logger.Error("failed to encode upload response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
