// internal/api/session_handler.go
package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Shadab-Akram/FlashCard/internal/domain/flashcard"
	"github.com/Shadab-Akram/FlashCard/internal/domain/studysession"
	"github.com/Shadab-Akram/FlashCard/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type StudySessionRequest struct {
	Subject    string  `json:"subject" validate:"required"`
	ClassLevel string  `json:"classLevel" validate:"required"`
	Difficulty string  `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Count      int     `json:"count" validate:"required,min=5,max=15"`
	Rounds     int     `json:"rounds" validate:"required,min=1,max=5"`
	PDFID      *string `json:"pdfId,omitempty"`
}

// FlashcardResponse is the card view handed to the client. It never
// carries source or sourceId; those stay behind the storage boundary.
type FlashcardResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Subject    string `json:"subject"`
	ClassLevel string `json:"classLevel"`
	Difficulty string `json:"difficulty"`
}

type StudySessionResponse struct {
	SessionID   string              `json:"sessionId"`
	Flashcards  []FlashcardResponse `json:"flashcards"`
	Round       int                 `json:"round"`
	TotalRounds int                 `json:"totalRounds"`
}

type RoundResultEntry struct {
	FlashcardID int64 `json:"flashcardId" validate:"required,gt=0"`
	IsCorrect   bool  `json:"isCorrect"`
}

type RoundResultsRequest struct {
	SessionID   string             `json:"sessionId" validate:"required"`
	Results     []RoundResultEntry `json:"results" validate:"required,min=1,dive"`
	Round       int                `json:"round" validate:"required,min=1"`
	TotalRounds int                `json:"totalRounds" validate:"required,min=1,max=5"`
}

type NextRoundResponse struct {
	SessionID   string              `json:"sessionId"`
	Flashcards  []FlashcardResponse `json:"flashcards"`
	Round       int                 `json:"round"`
	TotalRounds int                 `json:"totalRounds"`
}

type CompletedSessionResponse struct {
	SessionID string              `json:"sessionId"`
	Completed bool                `json:"completed"`
	Stats     *studysession.Stats `json:"stats"`
}

func toFlashcardResponses(cards []flashcard.Flashcard) []FlashcardResponse {
	out := make([]FlashcardResponse, len(cards))
	for i, card := range cards {
		out[i] = FlashcardResponse{
			ID:         card.ID,
			Question:   card.Question,
			Answer:     card.Answer,
			Subject:    card.Subject,
			ClassLevel: card.ClassLevel,
			Difficulty: string(card.Difficulty),
		}
	}
	return out
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /study-session
func (h *Handler) createStudySession(w http.ResponseWriter, r *http.Request) {
	var req StudySessionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	difficulty, err := flashcard.ParseDifficulty(req.Difficulty)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	in := service.GenerateInput{
		Subject:    req.Subject,
		ClassLevel: req.ClassLevel,
		Difficulty: difficulty,
		Count:      req.Count,
		Source:     flashcard.SourceDefault,
	}

	if req.PDFID != nil && *req.PDFID != "" {
		doc, err := h.store.PDFDocument(r.Context(), *req.PDFID)
		if h.handleStoreError(w, err, "pdf document") {
			return
		}
		in.Source = flashcard.SourcePDF
		in.SourceID = &doc.ID
		in.Content = doc.Content
	}

	cards, err := h.generation.GenerateFlashcards(r.Context(), in)
	if err != nil {
		h.logger.Error("flashcard generation failed", "subject", req.Subject, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to generate flashcards")
		return
	}

	respondJSON(w, http.StatusCreated, StudySessionResponse{
		SessionID:   uuid.NewString(),
		Flashcards:  toFlashcardResponses(cards),
		Round:       1,
		TotalRounds: req.Rounds,
	})
}

// POST /round-results
func (h *Handler) submitRoundResults(w http.ResponseWriter, r *http.Request) {
	var req RoundResultsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	results := make([]studysession.RoundResult, len(req.Results))
	for i, entry := range req.Results {
		results[i] = studysession.RoundResult{
			FlashcardID: entry.FlashcardID,
			IsCorrect:   entry.IsCorrect,
		}
	}

	out, err := h.sessions.SubmitRound(r.Context(), service.SubmitRoundInput{
		SessionID:   req.SessionID,
		Round:       req.Round,
		TotalRounds: req.TotalRounds,
		Results:     results,
	})
	if h.handleStoreError(w, err, "session") {
		return
	}

	if out.Completed {
		respondJSON(w, http.StatusOK, CompletedSessionResponse{
			SessionID: out.SessionID,
			Completed: true,
			Stats:     out.Stats,
		})
		return
	}

	respondJSON(w, http.StatusOK, NextRoundResponse{
		SessionID:   out.SessionID,
		Flashcards:  toFlashcardResponses(out.Flashcards),
		Round:       out.NextRound,
		TotalRounds: out.TotalRounds,
	})
}

// GET /session-stats/{sessionID}
func (h *Handler) getSessionStats(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	stats, err := h.sessions.Stats(r.Context(), sessionID)
	if h.handleStoreError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
