// Package pdf extracts plain text from uploaded PDF files for question
// generation. Extraction is best-effort: a PDF we cannot read still yields
// placeholder text so the upload never fails.
package pdf

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// maxContentLen caps extracted text; anything longer is truncated.
	maxContentLen = 15000

	// minUsableLen below which extraction is considered to have failed.
	minUsableLen = 50
)

const placeholderText = "PDF content could not be extracted. Please generate questions based on the document title."

// ExtractText pulls readable text out of a PDF. It tries a real parse
// first, then a raw scan for text-drawing operators, then falls back to a
// placeholder. It never returns an error.
func ExtractText(data []byte) string {
	if text := parsePlainText(data); len(strings.TrimSpace(text)) >= minUsableLen {
		return truncate(text)
	}

	if text := scanTextOperators(data); len(strings.TrimSpace(text)) >= minUsableLen {
		return truncate(text)
	}

	return placeholderText
}

// parsePlainText runs the PDF through a proper parser.
func parsePlainText(data []byte) string {
	defer func() {
		// The parser panics on some malformed files; treat that the same
		// as any other extraction failure.
		recover()
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	text, err := r.GetPlainText()
	if err != nil {
		return ""
	}

	var b strings.Builder
	if _, err := io.Copy(&b, text); err != nil {
		return ""
	}
	return b.String()
}

var textOperatorRe = regexp.MustCompile(`BT\s*\(([^)]+)\)`)

// scanTextOperators is the crude fallback: look for literal strings next
// to BT (begin text) markers in the raw bytes. Only works for simple,
// uncompressed PDFs.
func scanTextOperators(data []byte) string {
	// Cap the scan for very large files.
	if len(data) > 1<<20 {
		data = data[:1<<20]
	}

	var b strings.Builder
	for _, m := range textOperatorRe.FindAllSubmatch(data, -1) {
		b.Write(m[1])
		b.WriteByte(' ')
	}
	return b.String()
}

func truncate(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > maxContentLen {
		return text[:maxContentLen] + "...[content truncated]"
	}
	return text
}
