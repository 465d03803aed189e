// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document decodes manuscript files into the plain-text string
// the checking engine consumes. Plain-text formats are read directly;
// .docx and .pdf are reduced to their paragraph text.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ReadFile returns the plain text of a manuscript file, dispatching on
// the file extension. Unknown extensions are read as plain text, so
// extensionless manuscripts still work.
func ReadFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".markdown", ".tex", ".latex":
		return readText(path)
	case ".docx":
		return readDocx(path)
	case ".pdf":
		return readPDF(path)
	default:
		return readText(path)
	}
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// readPDF extracts text from every page. Pages that fail to render are
// skipped rather than failing the whole read.
func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}
