// internal/api/pdf_handler.go
package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Shadab-Akram/FlashCard/internal/pdf"
	"github.com/Shadab-Akram/FlashCard/internal/store"
)

// maxUploadBytes caps PDF uploads at 10 MB.
const maxUploadBytes = 10 << 20

type UploadPDFResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// POST /upload-pdf
//
// Multipart upload under the "pdf" field. Extraction never fails the
// request; unreadable files fall through to placeholder content so a
// study session can still be started against the document.
func (h *Handler) uploadPDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		respondError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if !isPDFUpload(header.Header.Get("Content-Type"), header.Filename) {
		respondError(w, http.StatusBadRequest, "only PDF files are accepted")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	doc := store.PDFDocument{
		ID:      uuid.NewString(),
		Name:    header.Filename,
		Content: pdf.ExtractText(data),
	}

	if err := h.store.SavePDFDocument(r.Context(), doc); err != nil {
		h.logger.Error("failed to save pdf document", "name", doc.Name, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save document")
		return
	}

	h.logger.Info("pdf uploaded", "id", doc.ID, "name", doc.Name, "bytes", len(data))
	respondJSON(w, http.StatusOK, UploadPDFResponse{
		ID:      doc.ID,
		Name:    doc.Name,
		Message: "PDF uploaded successfully",
	})
}

// isPDFUpload accepts a declared application/pdf content type or a .pdf
// filename; browsers are inconsistent about which one they set.
func isPDFUpload(contentType, filename string) bool {
	if strings.HasPrefix(contentType, "application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
