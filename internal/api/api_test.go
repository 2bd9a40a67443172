package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/Shadab-Akram/FlashCard/internal/service"
	"github.com/Shadab-Akram/FlashCard/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	memStore := store.NewMemStore()
	sessions := service.NewSessionService(memStore, logger)
	generation := service.NewGenerationService(memStore, nil, logger)

	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(memStore, sessions, generation, logger))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

type statsBody struct {
	TotalCards           int    `json:"totalCards"`
	CorrectCount         int    `json:"correctCount"`
	IncorrectCount       int    `json:"incorrectCount"`
	Accuracy             int    `json:"accuracy"`
	TimeSpent            string `json:"timeSpent"`
	MostDifficultSubject string `json:"mostDifficultSubject"`
}

type roundBody struct {
	SessionID   string              `json:"sessionId"`
	Flashcards  []FlashcardResponse `json:"flashcards"`
	Round       int                 `json:"round"`
	TotalRounds int                 `json:"totalRounds"`
	Completed   bool                `json:"completed"`
	Stats       *statsBody          `json:"stats"`
}

func TestStudySessionEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/study-session", map[string]any{
		"subject":    "mathematics",
		"classLevel": "9",
		"difficulty": "easy",
		"count":      5,
		"rounds":     2,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /study-session status = %d, want 201", resp.StatusCode)
	}
	created := decodeBody[roundBody](t, resp)

	if created.SessionID == "" {
		t.Fatal("no sessionId in response")
	}
	if len(created.Flashcards) != 5 {
		t.Fatalf("got %d flashcards, want 5", len(created.Flashcards))
	}
	if created.Round != 1 || created.TotalRounds != 2 {
		t.Errorf("round/totalRounds = %d/%d, want 1/2", created.Round, created.TotalRounds)
	}
	for i, card := range created.Flashcards {
		if card.Difficulty != "easy" {
			t.Errorf("card %d difficulty = %q, want easy", i, card.Difficulty)
		}
	}

	// Round 1: 3 correct, 2 incorrect.
	results := make([]map[string]any, 5)
	for i, card := range created.Flashcards {
		results[i] = map[string]any{
			"flashcardId": card.ID,
			"isCorrect":   i < 3,
		}
	}
	resp = postJSON(t, srv, "/round-results", map[string]any{
		"sessionId":   created.SessionID,
		"results":     results,
		"round":       1,
		"totalRounds": 2,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("round 1 status = %d, want 200", resp.StatusCode)
	}
	round2 := decodeBody[roundBody](t, resp)

	if round2.Completed {
		t.Fatal("round 1 of 2 should not complete the session")
	}
	if round2.Round != 2 {
		t.Errorf("next round = %d, want 2", round2.Round)
	}
	if len(round2.Flashcards) != 2 {
		t.Fatalf("round 2 has %d cards, want 2", len(round2.Flashcards))
	}
	for i, card := range round2.Flashcards {
		if card.Difficulty != "medium" {
			t.Errorf("round 2 card %d difficulty = %q, want medium", i, card.Difficulty)
		}
	}

	// Round 2: both incorrect.
	finalResults := make([]map[string]any, len(round2.Flashcards))
	for i, card := range round2.Flashcards {
		finalResults[i] = map[string]any{
			"flashcardId": card.ID,
			"isCorrect":   false,
		}
	}
	resp = postJSON(t, srv, "/round-results", map[string]any{
		"sessionId":   created.SessionID,
		"results":     finalResults,
		"round":       2,
		"totalRounds": 2,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("round 2 status = %d, want 200", resp.StatusCode)
	}
	final := decodeBody[roundBody](t, resp)

	if !final.Completed {
		t.Fatal("final round should report completed")
	}
	if final.Stats == nil {
		t.Fatal("completed response has no stats")
	}
	if final.Stats.TotalCards != 7 {
		t.Errorf("totalCards = %d, want 7", final.Stats.TotalCards)
	}
	if final.Stats.CorrectCount != 3 {
		t.Errorf("correctCount = %d, want 3", final.Stats.CorrectCount)
	}
	if final.Stats.IncorrectCount != 4 {
		t.Errorf("incorrectCount = %d, want 4", final.Stats.IncorrectCount)
	}
	if final.Stats.Accuracy != 43 {
		t.Errorf("accuracy = %d, want 43", final.Stats.Accuracy)
	}
	if final.Stats.MostDifficultSubject != "mathematics" {
		t.Errorf("mostDifficultSubject = %q, want mathematics", final.Stats.MostDifficultSubject)
	}

	// Stats stay queryable after completion.
	statsResp, err := http.Get(srv.URL + "/session-stats/" + created.SessionID)
	if err != nil {
		t.Fatalf("GET /session-stats: %v", err)
	}
	if statsResp.StatusCode != http.StatusOK {
		t.Fatalf("session-stats status = %d, want 200", statsResp.StatusCode)
	}
	snapshot := decodeBody[statsBody](t, statsResp)
	if snapshot.Accuracy != 43 {
		t.Errorf("snapshot accuracy = %d, want 43", snapshot.Accuracy)
	}
}

func TestStudySessionValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"count below range", map[string]any{
			"subject": "science", "classLevel": "9", "difficulty": "easy", "count": 3, "rounds": 2,
		}},
		{"count above range", map[string]any{
			"subject": "science", "classLevel": "9", "difficulty": "easy", "count": 20, "rounds": 2,
		}},
		{"rounds above range", map[string]any{
			"subject": "science", "classLevel": "9", "difficulty": "easy", "count": 5, "rounds": 6,
		}},
		{"bad difficulty", map[string]any{
			"subject": "science", "classLevel": "9", "difficulty": "extreme", "count": 5, "rounds": 2,
		}},
		{"missing subject", map[string]any{
			"classLevel": "9", "difficulty": "easy", "count": 5, "rounds": 2,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, srv, "/study-session", tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			body := decodeBody[ErrorResponse](t, resp)
			if len(body.Errors) == 0 {
				t.Error("expected field errors in response")
			}
		})
	}
}

func TestStudySessionUnknownPDF(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/study-session", map[string]any{
		"subject":    "science",
		"classLevel": "9",
		"difficulty": "easy",
		"count":      5,
		"rounds":     2,
		"pdfId":      "does-not-exist",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRoundResultsValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing session id", map[string]any{
			"results": []map[string]any{{"flashcardId": 1, "isCorrect": true}}, "round": 1, "totalRounds": 2,
		}},
		{"empty results", map[string]any{
			"sessionId": "s1", "results": []map[string]any{}, "round": 1, "totalRounds": 2,
		}},
		{"zero flashcard id", map[string]any{
			"sessionId": "s1", "results": []map[string]any{{"flashcardId": 0, "isCorrect": true}}, "round": 1, "totalRounds": 2,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, srv, "/round-results", tc.body)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}

	t.Run("round past total", func(t *testing.T) {
		resp := postJSON(t, srv, "/round-results", map[string]any{
			"sessionId":   "s1",
			"results":     []map[string]any{{"flashcardId": 1, "isCorrect": true}},
			"round":       3,
			"totalRounds": 2,
		})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestSessionStatsNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/session-stats/never-started")
	if err != nil {
		t.Fatalf("GET /session-stats: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetOptions(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/options")
	if err != nil {
		t.Fatalf("GET /options: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody[OptionsResponse](t, resp)

	if len(body.Subjects) != 6 {
		t.Errorf("got %d subjects, want 6", len(body.Subjects))
	}
	if len(body.DifficultyLevels) != 3 {
		t.Errorf("got %d difficulty levels, want 3", len(body.DifficultyLevels))
	}
	if len(body.QuestionCounts) != 3 {
		t.Errorf("got %d question counts, want 3", len(body.QuestionCounts))
	}
}

func uploadFile(t *testing.T, srv *httptest.Server, field, filename, contentType string, data []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()

	resp, err := http.Post(srv.URL+"/upload-pdf", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("POST /upload-pdf: %v", err)
	}
	return resp
}

func TestUploadPDFThenStudySession(t *testing.T) {
	srv := newTestServer(t)

	// Not a real PDF; extraction falls back to placeholder content.
	raw := []byte("%PDF-1.4 " + strings.Repeat("x", 100))
	resp := uploadFile(t, srv, "pdf", "notes.pdf", "application/pdf", raw)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload status = %d, want 200", resp.StatusCode)
	}
	uploaded := decodeBody[UploadPDFResponse](t, resp)

	if uploaded.ID == "" {
		t.Fatal("no document id in upload response")
	}
	if uploaded.Name != "notes.pdf" {
		t.Errorf("name = %q, want notes.pdf", uploaded.Name)
	}

	sessResp := postJSON(t, srv, "/study-session", map[string]any{
		"subject":    "science",
		"classLevel": "9",
		"difficulty": "medium",
		"count":      6,
		"rounds":     2,
		"pdfId":      uploaded.ID,
	})
	if sessResp.StatusCode != http.StatusCreated {
		t.Fatalf("study-session status = %d, want 201", sessResp.StatusCode)
	}
	created := decodeBody[roundBody](t, sessResp)
	if len(created.Flashcards) != 6 {
		t.Errorf("got %d flashcards, want 6", len(created.Flashcards))
	}
}

func TestUploadPDFRejectsOtherFiles(t *testing.T) {
	srv := newTestServer(t)

	resp := uploadFile(t, srv, "pdf", "notes.txt", "text/plain", []byte("plain text"))
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUploadPDFMissingFile(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("name", "no file here")
	mw.Close()

	resp, err := http.Post(srv.URL+"/upload-pdf", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("POST /upload-pdf: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
