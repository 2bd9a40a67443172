// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires all handler methods onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /options", h.getOptions)
	mux.HandleFunc("POST /upload-pdf", h.uploadPDF)

	mux.HandleFunc("POST /study-session", h.createStudySession)
	mux.HandleFunc("POST /round-results", h.submitRoundResults)
	mux.HandleFunc("GET /session-stats/{sessionID}", h.getSessionStats)
}
