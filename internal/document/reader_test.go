package document

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFilePlainText(t *testing.T) {
	content := "A manuscript (Smith, 2020) with text.\n\nReferences\n\nSmith, J. (2020). Title.\n"

	for _, name := range []string{"paper.txt", "paper.md", "paper.tex", "NOTES"} {
		t.Run(name, func(t *testing.T) {
			path := writeTempFile(t, name, content)
			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, content, got)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

// writeDocx builds a minimal OOXML package with the given paragraphs.
func writeDocx(t *testing.T, paragraphs []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paper.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		b.WriteString(`<w:p><w:r><w:t>`)
		b.WriteString(p)
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	b.WriteString(`</w:body></w:document>`)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(b.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestReadFileDocx(t *testing.T) {
	path := writeDocx(t, []string{
		"A claim (Smith, 2020) appears here.",
		"References",
		"Smith, J. (2020). Title. Press.",
	})

	got, err := ReadFile(path)
	require.NoError(t, err)

	want := "A claim (Smith, 2020) appears here.\nReferences\nSmith, J. (2020). Title. Press.\n"
	assert.Equal(t, want, got)
}

func TestReadFileDocxWithoutDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = ReadFile(path)
	assert.Error(t, err)
}

func TestExtractDocxTextBreaksAndTabs(t *testing.T) {
	xml := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>before</w:t></w:r><w:r><w:br/></w:r><w:r><w:t>after</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t xml:space="preserve">  </w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got, err := extractDocxText(strings.NewReader(xml))
	require.NoError(t, err)
	assert.Equal(t, "before after\n", got)
}
