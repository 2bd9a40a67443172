package store

import (
	"context"
	"sync"
	"time"

	"github.com/Shadab-Akram/FlashCard/internal/domain/flashcard"
	"github.com/Shadab-Akram/FlashCard/internal/domain/studysession"
)

// MemStore keeps everything in process memory. It backs tests and the
// zero-config deployment where durability does not matter; state is lost
// on restart.
type MemStore struct {
	mu         sync.RWMutex
	nextCardID int64
	flashcards map[int64]flashcard.Flashcard
	sessions   map[string]*studysession.Session
	documents  map[string]PDFDocument
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		nextCardID: 1,
		flashcards: make(map[int64]flashcard.Flashcard),
		sessions:   make(map[string]*studysession.Session),
		documents:  make(map[string]PDFDocument),
	}
}

func (m *MemStore) Close() error { return nil }

func (m *MemStore) SaveFlashcards(_ context.Context, cards []flashcard.New, source flashcard.Source, sourceID *string) ([]flashcard.Flashcard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := make([]flashcard.Flashcard, 0, len(cards))
	for _, c := range cards {
		card := flashcard.Flashcard{
			ID:         m.nextCardID,
			Question:   c.Question,
			Answer:     c.Answer,
			Subject:    c.Subject,
			ClassLevel: c.ClassLevel,
			Difficulty: c.Difficulty,
			Source:     source,
			SourceID:   sourceID,
		}
		m.nextCardID++
		m.flashcards[card.ID] = card
		saved = append(saved, card)
	}
	return saved, nil
}

func (m *MemStore) FlashcardsByIDs(_ context.Context, ids []int64) ([]flashcard.Flashcard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var cards []flashcard.Flashcard
	for _, id := range ids {
		if card, ok := m.flashcards[id]; ok {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

func (m *MemStore) AppendRoundResults(_ context.Context, sessionID string, round int, results []studysession.RoundResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sessionID]
	if !ok {
		sess = &studysession.Session{
			ID:        sessionID,
			Rounds:    make(map[int][]studysession.RoundResult),
			StartTime: time.Now().UTC(),
		}
		m.sessions[sessionID] = sess
	}

	stored := make([]studysession.RoundResult, len(results))
	copy(stored, results)
	sess.Rounds[round] = stored
	return nil
}

func (m *MemStore) Session(_ context.Context, sessionID string) (*studysession.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}

	// Copy so callers cannot mutate stored state.
	out := &studysession.Session{
		ID:        sess.ID,
		Rounds:    make(map[int][]studysession.RoundResult, len(sess.Rounds)),
		StartTime: sess.StartTime,
	}
	for round, results := range sess.Rounds {
		rs := make([]studysession.RoundResult, len(results))
		copy(rs, results)
		out.Rounds[round] = rs
	}
	return out, nil
}

func (m *MemStore) DeleteSessionsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for id, sess := range m.sessions {
		if sess.StartTime.Before(cutoff) {
			delete(m.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MemStore) SavePDFDocument(_ context.Context, doc PDFDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[doc.ID] = doc
	return nil
}

func (m *MemStore) PDFDocument(_ context.Context, id string) (*PDFDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.documents[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &doc, nil
}
