// internal/service/session.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Shadab-Akram/FlashCard/internal/domain/flashcard"
	"github.com/Shadab-Akram/FlashCard/internal/domain/studysession"
	"github.com/Shadab-Akram/FlashCard/internal/store"
)

// ErrValidation marks user-correctable input problems. Handlers map it to
// a 400 response.
var ErrValidation = errors.New("validation failed")

// MaxRounds is the most review rounds a session may have.
const MaxRounds = 5

// SubmitRoundInput is one round's worth of results for a session.
type SubmitRoundInput struct {
	SessionID   string
	Round       int
	TotalRounds int
	Results     []studysession.RoundResult
}

// RoundOutcome is either the next round's card set or the completed
// session's summary, never both.
type RoundOutcome struct {
	SessionID   string
	TotalRounds int

	// More rounds remain.
	NextRound  int
	Flashcards []flashcard.Flashcard // escalated views, possibly empty

	// Final round submitted.
	Completed bool
	Stats     *studysession.Stats
}

// SessionService owns round progression for study sessions. Sessions are
// created lazily: the first round submission for a sessionID creates the
// record and captures its start time.
//
// Each session has its own lock, so submissions for one session are
// serialized while different sessions proceed in parallel.
type SessionService struct {
	store  store.Store
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex // sessionID → lock
}

func NewSessionService(s store.Store, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:  s,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// SubmitRound records one round of results and decides what happens next:
// rounds below totalRounds yield the incorrectly-answered cards at one
// difficulty step up; the final round yields the session summary.
//
// Validation happens before any state is touched, so a rejected
// submission leaves the session exactly as it was.
func (s *SessionService) SubmitRound(ctx context.Context, in SubmitRoundInput) (*RoundOutcome, error) {
	if err := validateSubmission(in); err != nil {
		return nil, err
	}

	lock := s.sessionLock(in.SessionID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.AppendRoundResults(ctx, in.SessionID, in.Round, in.Results); err != nil {
		return nil, fmt.Errorf("failed to record round %d: %w", in.Round, err)
	}

	if in.Round < in.TotalRounds {
		cards, err := s.nextRoundCards(ctx, in.Results)
		if err != nil {
			return nil, err
		}
		return &RoundOutcome{
			SessionID:   in.SessionID,
			TotalRounds: in.TotalRounds,
			NextRound:   in.Round + 1,
			Flashcards:  cards,
		}, nil
	}

	stats, err := s.computeStats(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}
	s.releaseSessionLock(in.SessionID)
	return &RoundOutcome{
		SessionID:   in.SessionID,
		TotalRounds: in.TotalRounds,
		Completed:   true,
		Stats:       stats,
	}, nil
}

// Stats returns the current summary for a session, or store.ErrNotFound
// when no round was ever recorded for the id.
func (s *SessionService) Stats(ctx context.Context, sessionID string) (*studysession.Stats, error) {
	return s.computeStats(ctx, sessionID)
}

// nextRoundCards rehydrates the cards answered incorrectly and raises
// each one's difficulty one step for the returned view. Stored cards stay
// untouched. A perfect round yields an empty (non-nil) list; callers see
// an empty next round rather than early completion.
func (s *SessionService) nextRoundCards(ctx context.Context, results []studysession.RoundResult) ([]flashcard.Flashcard, error) {
	incorrectIDs := studysession.IncorrectIDs(results)

	cards, err := s.store.FlashcardsByIDs(ctx, incorrectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards for next round: %w", err)
	}

	views := make([]flashcard.Flashcard, len(cards))
	for i, card := range cards {
		card.Difficulty = card.Difficulty.Next()
		views[i] = card
	}
	return views, nil
}

func (s *SessionService) computeStats(ctx context.Context, sessionID string) (*studysession.Stats, error) {
	sess, err := s.store.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resolve := func(ids []int64) []flashcard.Flashcard {
		cards, err := s.store.FlashcardsByIDs(ctx, ids)
		if err != nil {
			s.logger.Error("failed to resolve subjects for stats",
				"session_id", sessionID,
				"error", err,
			)
			return nil
		}
		return cards
	}

	stats := studysession.ComputeStats(sess, time.Now().UTC(), resolve)
	return &stats, nil
}

func validateSubmission(in SubmitRoundInput) error {
	if in.SessionID == "" {
		return fmt.Errorf("%w: sessionId is required", ErrValidation)
	}
	if in.TotalRounds < 1 || in.TotalRounds > MaxRounds {
		return fmt.Errorf("%w: totalRounds must be between 1 and %d", ErrValidation, MaxRounds)
	}
	if in.Round < 1 || in.Round > in.TotalRounds {
		return fmt.Errorf("%w: round must be between 1 and totalRounds", ErrValidation)
	}
	if len(in.Results) == 0 {
		return fmt.Errorf("%w: results must not be empty", ErrValidation)
	}
	for i, r := range in.Results {
		if r.FlashcardID <= 0 {
			return fmt.Errorf("%w: results[%d].flashcardId must be a positive integer", ErrValidation, i)
		}
	}
	return nil
}

// sessionLock returns the mutex for a session, creating it on first use.
func (s *SessionService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// releaseSessionLock drops a completed session's mutex so the map does
// not grow for the process lifetime. A late resubmission simply recreates
// it.
func (s *SessionService) releaseSessionLock(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, sessionID)
}
