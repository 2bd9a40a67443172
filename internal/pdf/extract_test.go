package pdf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Shadab-Akram/FlashCard/internal/pdf"
)

func TestExtractText_FallsBackToPlaceholder(t *testing.T) {
	got := pdf.ExtractText([]byte("this is not a pdf at all"))
	if !strings.Contains(got, "could not be extracted") {
		t.Errorf("expected placeholder text, got %q", got)
	}
}

func TestExtractText_ScansTextOperators(t *testing.T) {
	// A fake uncompressed content stream with BT (...) text drawing.
	var raw bytes.Buffer
	raw.WriteString("%PDF-1.4\n")
	for i := 0; i < 10; i++ {
		raw.WriteString("BT (Photosynthesis converts light energy into chemical energy) ET\n")
	}

	got := pdf.ExtractText(raw.Bytes())
	if !strings.Contains(got, "Photosynthesis converts light energy") {
		t.Errorf("expected scanned text, got %q", got)
	}
}

func TestExtractText_TruncatesLongContent(t *testing.T) {
	var raw bytes.Buffer
	raw.WriteString("%PDF-1.4\n")
	line := "BT (" + strings.Repeat("lorem ipsum dolor sit amet ", 20) + ") ET\n"
	for i := 0; i < 100; i++ {
		raw.WriteString(line)
	}

	got := pdf.ExtractText(raw.Bytes())
	if !strings.HasSuffix(got, "...[content truncated]") {
		t.Errorf("expected truncation marker, got last bytes %q", got[len(got)-40:])
	}
	if len(got) > 15000+len("...[content truncated]") {
		t.Errorf("content too long after truncation: %d bytes", len(got))
	}
}

func TestExtractText_EmptyInput(t *testing.T) {
	got := pdf.ExtractText(nil)
	if !strings.Contains(got, "could not be extracted") {
		t.Errorf("expected placeholder for empty input, got %q", got)
	}
}
