package store

import (
	"context"
	"errors"
	"time"

	"github.com/Shadab-Akram/FlashCard/internal/domain/flashcard"
	"github.com/Shadab-Akram/FlashCard/internal/domain/studysession"
)

var (
	ErrNotFound = errors.New("not found")
)

// PDFDocument is an uploaded document whose extracted text can seed
// question generation.
type PDFDocument struct {
	ID      string
	Name    string
	Content string
}

// Store is the persistence boundary. The session state machine and the
// generation service are written against this interface so a different
// backend can be substituted without touching them.
type Store interface {
	// SaveFlashcards assigns each card a monotonically increasing id (ids
	// are never reused) and returns the stored records in input order.
	SaveFlashcards(ctx context.Context, cards []flashcard.New, source flashcard.Source, sourceID *string) ([]flashcard.Flashcard, error)

	// FlashcardsByIDs returns the cards that exist, in no particular
	// order. Unknown ids are silently dropped: round submissions may
	// reference cards from an earlier session cycle.
	FlashcardsByIDs(ctx context.Context, ids []int64) ([]flashcard.Flashcard, error)

	// AppendRoundResults records one round of a session, creating the
	// session (and capturing its start time) on the first call for a
	// sessionID. Resubmitting a round overwrites it. The write is atomic:
	// either the whole round is recorded or none of it.
	AppendRoundResults(ctx context.Context, sessionID string, round int, results []studysession.RoundResult) error

	// Session returns the session with all recorded rounds, or
	// ErrNotFound if no round was ever recorded for the id.
	Session(ctx context.Context, sessionID string) (*studysession.Session, error)

	SavePDFDocument(ctx context.Context, doc PDFDocument) error
	PDFDocument(ctx context.Context, id string) (*PDFDocument, error)

	// DeleteSessionsBefore removes sessions started before cutoff and
	// returns how many were deleted. Flashcards are kept: lenient id
	// lookups and live-session stats may still reference them.
	DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	Close() error
}
