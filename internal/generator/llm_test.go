package generator_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shadab-Akram/FlashCard/internal/domain/flashcard"
	"github.com/Shadab-Akram/FlashCard/internal/generator"
)

// fakeLLM returns an httptest server that answers every chat completion
// with the given message content.
func fakeLLM(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLLMGenerator_ParsesBareArray(t *testing.T) {
	srv := fakeLLM(t, `Here you go:
[{"question": "What is 2+2?", "answer": "4"}, {"question": "What is 3+3?", "answer": "6"}]`)

	g := generator.NewLLMGenerator(srv.URL, "test-model")
	pairs, err := g.Generate(context.Background(), generator.Request{
		Subject:    "mathematics",
		ClassLevel: "1",
		Difficulty: flashcard.DifficultyEasy,
		Count:      2,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	if pairs[0].Question != "What is 2+2?" || pairs[1].Answer != "6" {
		t.Errorf("unexpected pairs: %+v", pairs)
	}
}

func TestLLMGenerator_ParsesWrappedObject(t *testing.T) {
	srv := fakeLLM(t, `{"flashcards": [{"question": "Q1", "answer": "A1"}]}`)

	g := generator.NewLLMGenerator(srv.URL, "test-model")
	pairs, err := g.Generate(context.Background(), generator.Request{Count: 1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Question != "Q1" {
		t.Errorf("unexpected pairs: %+v", pairs)
	}
}

func TestLLMGenerator_CyclesWhenModelReturnsShort(t *testing.T) {
	srv := fakeLLM(t, `[{"question": "Only one", "answer": "pair"}]`)

	g := generator.NewLLMGenerator(srv.URL, "test-model")
	pairs, err := g.Generate(context.Background(), generator.Request{Count: 5})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pairs) != 5 {
		t.Fatalf("got %d pairs, want 5", len(pairs))
	}
	for _, p := range pairs {
		if p.Question != "Only one" {
			t.Errorf("expected cycling, got %+v", p)
		}
	}
}

func TestLLMGenerator_ErrorOnGarbage(t *testing.T) {
	srv := fakeLLM(t, "I cannot help with that.")

	g := generator.NewLLMGenerator(srv.URL, "test-model")
	_, err := g.Generate(context.Background(), generator.Request{Count: 3})
	if err == nil {
		t.Fatal("expected error for unparseable response")
	}

	var genErr *generator.GenerateError
	if !errors.As(err, &genErr) {
		t.Errorf("expected *GenerateError, got %T: %v", err, err)
	}
}

func TestLLMGenerator_ErrorOnUnreachableEndpoint(t *testing.T) {
	g := generator.NewLLMGenerator("http://127.0.0.1:1", "test-model")
	_, err := g.Generate(context.Background(), generator.Request{Count: 3})
	if err == nil {
		t.Fatal("expected error for unreachable endpoint")
	}
}
