package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"arsipku/internal/config"
	"arsipku/internal/middleware"
	"arsipku/internal/model"
	"arsipku/internal/service"
)

// DocumentHandler serves document CRUD, download and aggregate statistics.
type DocumentHandler struct {
	Docs       *service.DocumentService
	Aggregates *service.StatsService
	Logger     *zap.SugaredLogger
	Config     *config.Config
}

func NewDocumentHandler(docs *service.DocumentService, stats *service.StatsService, logger *zap.SugaredLogger, cfg *config.Config) *DocumentHandler {
	return &DocumentHandler{Docs: docs, Aggregates: stats, Logger: logger, Config: cfg}
}

// DocumentDTO is a document without its payload bytes.
type DocumentDTO struct {
	ID               int64  `json:"id"`
	Folder           string `json:"folder"`
	FileName         string `json:"file_name"`
	OriginalFileName string `json:"original_file_name"`
	UploadDate       string `json:"upload_date"`
	MimeType         string `json:"mime_type"`
	FileSize         int64  `json:"file_size"`
}

func toDTO(d *model.Document) DocumentDTO {
	return DocumentDTO{
		ID:               d.ID,
		Folder:           d.Folder.String(),
		FileName:         d.FileName,
		OriginalFileName: d.OriginalFileName,
		UploadDate:       d.UploadDate.UTC().Format(time.RFC3339),
		MimeType:         d.MimeType,
		FileSize:         d.Size(),
	}
}

func toDTOs(docs []model.Document) []DocumentDTO {
	out := make([]DocumentDTO, 0, len(docs))
	for i := range docs {
		out = append(out, toDTO(&docs[i]))
	}
	return out
}

func (h *DocumentHandler) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return uid, true
}

// ownedDocument loads the document and hides other users' documents behind 404.
func (h *DocumentHandler) ownedDocument(w http.ResponseWriter, r *http.Request, userID string) (*model.Document, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return nil, false
	}
	doc, err := h.Docs.Get(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "document not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		h.Logger.Errorw("load document", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	if doc.UserID != userID {
		http.Error(w, "document not found", http.StatusNotFound)
		return nil, false
	}
	return doc, true
}

// List returns the user's documents, optionally scoped to one folder,
// filtered by ?q= and ordered by ?sort=date|name&order=asc|desc
// (default: upload date, newest first).
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var (
		docs []model.Document
		err  error
	)
	if raw := r.URL.Query().Get("folder"); raw != "" {
		folder, perr := model.ParseFolder(raw)
		if perr != nil {
			http.Error(w, perr.Error(), http.StatusBadRequest)
			return
		}
		docs, err = h.Docs.ListByFolder(r.Context(), userID, folder)
	} else {
		docs, err = h.Docs.ListAll(r.Context(), userID)
	}
	if err != nil {
		h.Logger.Errorw("List: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	docs = service.FilterDocuments(docs, r.URL.Query().Get("q"))

	key := service.SortByUploadDate
	if r.URL.Query().Get("sort") == "name" {
		key = service.SortByFileName
	}
	desc := r.URL.Query().Get("order") != "asc"
	docs = service.SortDocuments(docs, key, desc)

	writeJSON(w, http.StatusOK, toDTOs(docs))
}

// Recent returns the five most recently uploaded documents.
func (h *DocumentHandler) Recent(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	docs, err := h.Aggregates.Recent(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("Recent: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toDTOs(docs))
}

// Upload stores a new document from a multipart form: folder, name, file.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.Logger.Warnw("Upload: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file supplied", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" && header != nil {
		name = header.Filename
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	doc, err := h.Docs.Upload(r.Context(), userID, model.Folder(r.FormValue("folder")), name, file, header.Filename, mimeType)
	if errors.Is(err, service.ErrValidation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.Logger.Errorw("Upload: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toDTO(doc))
}

type renameRequest struct {
	FileName string `json:"file_name"`
}

// Rename updates the display name of one document.
func (h *DocumentHandler) Rename(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	doc, ok := h.ownedDocument(w, r, userID)
	if !ok {
		return
	}

	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	updated, err := h.Docs.Rename(r.Context(), doc.ID, req.FileName)
	if errors.Is(err, service.ErrValidation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.Logger.Errorw("Rename: service error", "id", doc.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(updated))
}

// Delete removes a document. Deleting an id that no longer exists still
// answers 204.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}
	doc, err := h.Docs.Get(r.Context(), id)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		h.Logger.Errorw("Delete: load error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if doc != nil && doc.UserID != userID {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}
	if err := h.Docs.Remove(r.Context(), id); err != nil {
		h.Logger.Errorw("Delete: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Download serves the stored payload byte-exact, with the stored MIME type
// and the original file name.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	doc, ok := h.ownedDocument(w, r, userID)
	if !ok {
		return
	}

	name := doc.OriginalFileName
	if name == "" {
		name = doc.FileName
	}
	mimeType := doc.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.FileData)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.FileData)
}

type statsResponse struct {
	Folders        map[model.Folder]int `json:"folders"`
	TotalCount     int                  `json:"total_count"`
	TotalBytes     int64                `json:"total_bytes"`
	TotalFormatted string               `json:"total_formatted"`
}

// Stats returns the per-folder counts, total count and total bytes used.
func (h *DocumentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	agg, err := h.Aggregates.Recompute(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("Stats: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		Folders:        agg.FolderCounts,
		TotalCount:     agg.TotalCount,
		TotalBytes:     agg.TotalBytes,
		TotalFormatted: service.FormatBytes(agg.TotalBytes),
	})
}
