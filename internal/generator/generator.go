package generator

import (
	"context"

	"github.com/Shadab-Akram/FlashCard/internal/domain/flashcard"
)

// QA is a single generated question/answer pair.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Request describes the card set to generate. Content optionally carries
// PDF-extracted text the questions should draw from.
type Request struct {
	Subject    string
	ClassLevel string
	Difficulty flashcard.Difficulty
	Count      int
	Content    string
}

// Generator produces question/answer pairs. Implementations must return
// exactly Count pairs or an error; callers rely on the length.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]QA, error)
}
