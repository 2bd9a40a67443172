package store

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Shadab-Akram/FlashCard/internal/domain/flashcard"
	"github.com/Shadab-Akram/FlashCard/internal/domain/studysession"
)

const schema = `
CREATE TABLE IF NOT EXISTS flashcards (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    subject TEXT NOT NULL,
    class_level TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    source TEXT NOT NULL DEFAULT 'default',
    source_id TEXT
);

CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    start_time TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS session_rounds (
    session_id TEXT NOT NULL,
    round INTEGER NOT NULL,
    position INTEGER NOT NULL,
    flashcard_id INTEGER NOT NULL,
    is_correct BOOLEAN NOT NULL,
    PRIMARY KEY (session_id, round, position),
    FOREIGN KEY (session_id) REFERENCES sessions(id)
);

CREATE TABLE IF NOT EXISTS pdf_documents (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    content TEXT NOT NULL
);
`

// SQLiteStore persists flashcards, sessions, and uploaded documents in a
// single SQLite database. AUTOINCREMENT guarantees flashcard ids are never
// reused even if rows were ever deleted out of band.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Flashcards
// ============================================================================

func (s *SQLiteStore) SaveFlashcards(ctx context.Context, cards []flashcard.New, source flashcard.Source, sourceID *string) ([]flashcard.Flashcard, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	saved := make([]flashcard.Flashcard, 0, len(cards))
	for _, c := range cards {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO flashcards (question, answer, subject, class_level, difficulty, source, source_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
			c.Question, c.Answer, c.Subject, c.ClassLevel, string(c.Difficulty), string(source), sourceID,
		)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		saved = append(saved, flashcard.Flashcard{
			ID:         id,
			Question:   c.Question,
			Answer:     c.Answer,
			Subject:    c.Subject,
			ClassLevel: c.ClassLevel,
			Difficulty: c.Difficulty,
			Source:     source,
			SourceID:   sourceID,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *SQLiteStore) FlashcardsByIDs(ctx context.Context, ids []int64) ([]flashcard.Flashcard, error) {
	var cards []flashcard.Flashcard
	for _, id := range ids {
		var (
			c          flashcard.Flashcard
			difficulty string
			source     string
			sourceID   sql.NullString
		)
		err := s.db.QueryRowContext(ctx,
			"SELECT id, question, answer, subject, class_level, difficulty, source, source_id FROM flashcards WHERE id = ?", id,
		).Scan(&c.ID, &c.Question, &c.Answer, &c.Subject, &c.ClassLevel, &difficulty, &source, &sourceID)
		if err == sql.ErrNoRows {
			continue // lenient lookup
		}
		if err != nil {
			return nil, err
		}
		c.Difficulty = flashcard.Difficulty(difficulty)
		c.Source = flashcard.Source(source)
		if sourceID.Valid {
			c.SourceID = &sourceID.String
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ============================================================================
// Sessions
// ============================================================================

func (s *SQLiteStore) AppendRoundResults(ctx context.Context, sessionID string, round int, results []studysession.RoundResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// First submission for this sessionID creates the session row and
	// captures its start time.
	_, err = tx.ExecContext(ctx,
		"INSERT INTO sessions (id, start_time) VALUES (?, ?) ON CONFLICT(id) DO NOTHING",
		sessionID, time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	// Resubmitting a round overwrites it rather than merging.
	_, err = tx.ExecContext(ctx,
		"DELETE FROM session_rounds WHERE session_id = ? AND round = ?",
		sessionID, round,
	)
	if err != nil {
		return err
	}

	for i, r := range results {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO session_rounds (session_id, round, position, flashcard_id, is_correct) VALUES (?, ?, ?, ?, ?)",
			sessionID, round, i, r.FlashcardID, r.IsCorrect,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Session(ctx context.Context, sessionID string) (*studysession.Session, error) {
	sess := &studysession.Session{
		ID:     sessionID,
		Rounds: make(map[int][]studysession.RoundResult),
	}

	err := s.db.QueryRowContext(ctx,
		"SELECT start_time FROM sessions WHERE id = ?", sessionID,
	).Scan(&sess.StartTime)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT round, flashcard_id, is_correct FROM session_rounds WHERE session_id = ? ORDER BY round, position",
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			round int
			r     studysession.RoundResult
		)
		if err := rows.Scan(&round, &r.FlashcardID, &r.IsCorrect); err != nil {
			return nil, err
		}
		sess.Rounds[round] = append(sess.Rounds[round], r)
	}
	return sess, rows.Err()
}

func (s *SQLiteStore) DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"DELETE FROM session_rounds WHERE session_id IN (SELECT id FROM sessions WHERE start_time < ?)",
		cutoff.UTC(),
	)
	if err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE start_time < ?", cutoff.UTC())
	if err != nil {
		return 0, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return deleted, tx.Commit()
}

// ============================================================================
// PDF documents
// ============================================================================

func (s *SQLiteStore) SavePDFDocument(ctx context.Context, doc PDFDocument) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO pdf_documents (id, name, content) VALUES (?, ?, ?)",
		doc.ID, doc.Name, doc.Content,
	)
	return err
}

func (s *SQLiteStore) PDFDocument(ctx context.Context, id string) (*PDFDocument, error) {
	var doc PDFDocument
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, content FROM pdf_documents WHERE id = ?", id,
	).Scan(&doc.ID, &doc.Name, &doc.Content)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
