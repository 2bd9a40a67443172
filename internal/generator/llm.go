package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// LLMGenerator produces flashcards by calling an OpenAI-compatible chat
// completions endpoint (OpenAI, Ollama, LM Studio, vLLM, etc.).
type LLMGenerator struct {
	url    string       // e.g. "https://api.openai.com" or "http://localhost:11434"
	model  string       // e.g. "gpt-4o" or "qwen3-8b"
	client *http.Client // reused across calls
}

var _ Generator = (*LLMGenerator)(nil)

// GenerateError is returned when generation fails so the caller can tell
// "endpoint unreachable" apart from "endpoint returned garbage."
type GenerateError struct {
	Reason  string
	Wrapped error
}

func (e *GenerateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("question generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("question generation failed: %s", e.Reason)
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}

// NewLLMGenerator creates a generator that calls the given endpoint.
func NewLLMGenerator(url, model string) *LLMGenerator {
	return &LLMGenerator{
		url:   url,
		model: model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

const maxAttempts = 2

// maxContentChars caps how much PDF text goes into the prompt.
const maxContentChars = 3000

// Generate asks the LLM for req.Count flashcards. It retries once on a
// parse failure and validates that the response has exactly the requested
// number of non-empty pairs, padding by cycling when the model returns a
// few short.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) ([]QA, error) {
	prompt := buildPrompt(req)

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		raw, err := g.callLLM(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		pairs, err := parseFlashcards(raw)
		if err != nil {
			lastErr = &GenerateError{Reason: "unparseable LLM response", Wrapped: err}
			continue
		}
		if len(pairs) == 0 {
			lastErr = &GenerateError{Reason: "LLM returned no flashcards"}
			continue
		}

		return cycleTo(pairs, req.Count), nil
	}

	return nil, &GenerateError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxAttempts),
		Wrapped: lastErr,
	}
}

// buildPrompt mirrors the request into grading-free generation
// instructions. The JSON schema goes last so it is the freshest thing the
// model has seen.
func buildPrompt(req Request) string {
	var b bytes.Buffer

	fmt.Fprintf(&b, "Generate %d flashcards for %s at %s level with %s difficulty.",
		req.Count, req.Subject, req.ClassLevel, req.Difficulty)

	if req.Content != "" {
		content := req.Content
		if len(content) > maxContentChars {
			content = content[:maxContentChars] + "..."
		}
		fmt.Fprintf(&b, " Base the questions on the following content: %q", content)
	}

	b.WriteString(`

Respond with ONLY a JSON array — no explanation, no markdown:
[{"question": "Clear, concise question text?", "answer": "Comprehensive answer that provides complete information."}]`)

	return b.String()
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const systemPrompt = "You are an expert educational content creator who specializes in making effective flashcards for students. Create flashcards that are clear, educational, and appropriate for the specified grade level and difficulty."

// callLLM sends a single request and returns the raw text response.
func (g *LLMGenerator) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := llmRequest{
		Model: g.model,
		Messages: []llmMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

// ============================================================================
// Response parsing
// ============================================================================

// parseFlashcards extracts a JSON array of {question, answer} objects from
// the model's response. It tolerates both a bare array and an object
// wrapping the array in a "flashcards" field, plus surrounding prose.
func parseFlashcards(raw string) ([]QA, error) {
	jsonStr := extractJSONArray(raw)
	if jsonStr != "" {
		var pairs []QA
		if err := json.Unmarshal([]byte(jsonStr), &pairs); err == nil {
			return nonEmpty(pairs), nil
		}
	}

	objStr := extractJSONObject(raw)
	if objStr != "" {
		var wrapper struct {
			Flashcards []QA `json:"flashcards"`
		}
		if err := json.Unmarshal([]byte(objStr), &wrapper); err == nil && len(wrapper.Flashcards) > 0 {
			return nonEmpty(wrapper.Flashcards), nil
		}
	}

	return nil, fmt.Errorf("no flashcard array found in response")
}

func nonEmpty(pairs []QA) []QA {
	var out []QA
	for _, p := range pairs {
		if p.Question != "" && p.Answer != "" {
			out = append(out, p)
		}
	}
	return out
}

// extractJSONArray finds the outermost JSON array in a string, skipping
// brackets inside quoted strings.
func extractJSONArray(s string) string {
	return extractDelimited(s, '[', ']')
}

// extractJSONObject finds the outermost JSON object in a string.
func extractJSONObject(s string) string {
	return extractDelimited(s, '{', '}')
}

func extractDelimited(s string, opener, closer rune) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == opener {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == closer {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// cycleTo pads or trims pairs to exactly count entries by wrapping around.
func cycleTo(pairs []QA, count int) []QA {
	if count <= 0 || len(pairs) == 0 {
		return nil
	}
	out := make([]QA, count)
	for i := range out {
		out[i] = pairs[i%len(pairs)]
	}
	return out
}
