// internal/service/generation.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Shadab-Akram/FlashCard/internal/domain/flashcard"
	"github.com/Shadab-Akram/FlashCard/internal/generator"
	"github.com/Shadab-Akram/FlashCard/internal/store"
	"github.com/Shadab-Akram/FlashCard/internal/worker"
)

const (
	// generateTimeout bounds a single LLM generation call; the static
	// fallback takes over past it.
	generateTimeout = 90 * time.Second

	llmWorkers   = 3
	llmQueueSize = 10
)

// GenerateInput describes one flashcard batch request.
type GenerateInput struct {
	Subject    string
	ClassLevel string
	Difficulty flashcard.Difficulty
	Count      int
	Source     flashcard.Source
	SourceID   *string // set for PDF-backed batches
	Content    string  // extracted PDF text, if any
}

type genResult struct {
	pairs []generator.QA
	err   error
}

// GenerationService produces and stores flashcard batches. LLM calls run
// through a bounded worker pool with a timeout; any failure falls back to
// the static banks, so callers always get content or a context error,
// never a hang.
type GenerationService struct {
	store    store.Store
	primary  generator.Generator // nil = static only
	fallback generator.Generator
	pool     *worker.Pool[genResult]
	logger   *slog.Logger
}

func NewGenerationService(s store.Store, primary generator.Generator, logger *slog.Logger) *GenerationService {
	return &GenerationService{
		store:    s,
		primary:  primary,
		fallback: generator.NewStaticGenerator(),
		pool:     worker.NewPool[genResult](llmWorkers, llmQueueSize),
		logger:   logger,
	}
}

// GenerateFlashcards produces exactly in.Count cards and persists them,
// returning the stored records in generation order.
func (g *GenerationService) GenerateFlashcards(ctx context.Context, in GenerateInput) ([]flashcard.Flashcard, error) {
	req := generator.Request{
		Subject:    in.Subject,
		ClassLevel: in.ClassLevel,
		Difficulty: in.Difficulty,
		Count:      in.Count,
		Content:    in.Content,
	}

	pairs, err := g.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	cards := make([]flashcard.New, len(pairs))
	for i, p := range pairs {
		cards[i] = flashcard.New{
			Question:   p.Question,
			Answer:     p.Answer,
			Subject:    in.Subject,
			ClassLevel: in.ClassLevel,
			Difficulty: in.Difficulty,
		}
	}

	saved, err := g.store.SaveFlashcards(ctx, cards, in.Source, in.SourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to save generated flashcards: %w", err)
	}
	return saved, nil
}

// generate tries the primary generator through the pool and falls back to
// the static banks on any failure or timeout.
func (g *GenerationService) generate(ctx context.Context, req generator.Request) ([]generator.QA, error) {
	if g.primary == nil {
		return g.fallback.Generate(ctx, req)
	}

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	result := g.pool.Submit(func() genResult {
		pairs, err := g.primary.Generate(genCtx, req)
		return genResult{pairs: pairs, err: err}
	})

	select {
	case res := <-result:
		if res.err == nil {
			return res.pairs, nil
		}
		g.logger.Warn("question generation failed, using static bank",
			"subject", req.Subject,
			"error", res.err,
		)
	case <-genCtx.Done():
		// Request cancelled or LLM call out of time. The static bank is
		// instant, so still serve content unless the caller is gone.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		g.logger.Warn("question generation timed out, using static bank",
			"subject", req.Subject,
		)
	}

	return g.fallback.Generate(ctx, req)
}
