// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// readDocx extracts paragraph and table-cell text from a .docx file.
// OOXML stores the document body as word/document.xml inside a zip;
// every visible run is a <w:t> element and paragraphs are <w:p>.
func readDocx(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening document.xml in %s: %w", path, err)
		}
		defer rc.Close()
		return extractDocxText(rc)
	}
	return "", fmt.Errorf("%s: no word/document.xml; not a .docx file", path)
}

func extractDocxText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var doc, para strings.Builder
	inRun := false

	flush := func() {
		if s := strings.TrimSpace(para.String()); s != "" {
			doc.WriteString(s)
			doc.WriteByte('\n')
		}
		para.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parsing document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inRun = true
			case "br", "tab":
				para.WriteByte(' ')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inRun {
				para.Write(t)
			}
		}
	}
	flush()
	return doc.String(), nil
}
