package flashcard

import "fmt"

// Difficulty is a totally ordered three-step scale.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a raw difficulty value.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", s)
}

// Next returns the next difficulty step. It saturates at hard.
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyHard
	}
}

// Source records where a card's content came from.
type Source string

const (
	SourceDefault Source = "default"
	SourcePDF     Source = "pdf"
	SourceCustom  Source = "custom"
)

// Flashcard is a stored question/answer card. Cards are immutable once
// saved; when a card is re-issued at a higher difficulty for a later
// review round, only the outgoing view carries the escalated difficulty.
type Flashcard struct {
	ID         int64
	Question   string
	Answer     string
	Subject    string
	ClassLevel string
	Difficulty Difficulty
	Source     Source
	SourceID   *string // set when Source is "pdf"
}

// New holds the caller-supplied fields of a card before the store has
// assigned it an id and a source.
type New struct {
	Question   string
	Answer     string
	Subject    string
	ClassLevel string
	Difficulty Difficulty
}
