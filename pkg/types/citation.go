// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures of the citation
// cross-checker: citations, bibliography entries, check results, and
// configuration.
package types

import "fmt"

// CitationStyle identifies the format a citation or entry was recognized as.
type CitationStyle string

const (
	// StyleAPA is a parenthetical author-year citation with a comma: (Smith, 2020).
	StyleAPA CitationStyle = "apa"

	// StyleHarvard is a parenthetical author-year citation without a comma: (Smith 2020).
	StyleHarvard CitationStyle = "harvard"

	// StyleChicago is a narrative author-year citation: Smith (2020).
	StyleChicago CitationStyle = "chicago"

	// StyleMLA is a parenthetical author-page citation: (Smith 42).
	StyleMLA CitationStyle = "mla"

	// StyleIEEE is a bracketed numeric citation: [1].
	StyleIEEE CitationStyle = "ieee"
)

// AuthorKey is the normalized author identity used to match citations
// against bibliography entries. Surnames are case-folded; every
// multi-author form — "et al.", "and", "&", explicit listings — collapses
// to the lead surname plus "+etal". Identical raw author text always
// yields the identical key.
type AuthorKey string

// Citation is one in-text citation occurrence. Immutable once created.
type Citation struct {
	// Style is the recognized citation format.
	Style CitationStyle `json:"style" yaml:"style"`

	// Key is the normalized author identity. Empty for numeric styles.
	Key AuthorKey `json:"key,omitempty" yaml:"key,omitempty"`

	// Authors lists the author surnames as written in the text.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Year is the cited year. Zero when absent (MLA author-page form).
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Page is the cited page or page range for MLA citations.
	Page string `json:"page,omitempty" yaml:"page,omitempty"`

	// Number is the bracket index for numeric styles, -1 otherwise.
	Number int `json:"number" yaml:"number"`

	// Raw is the matched substring as it appears in the manuscript.
	Raw string `json:"raw" yaml:"raw"`

	// Pos is the byte offset of the match in the manuscript text.
	Pos int `json:"pos" yaml:"pos"`
}

// Label returns a short identity for reports, e.g. "[3]" or "Smith, 2020".
func (c Citation) Label() string {
	if c.Number >= 0 {
		return fmt.Sprintf("[%d]", c.Number)
	}
	if len(c.Authors) > 0 && c.Year > 0 {
		return fmt.Sprintf("%s, %d", c.Authors[0], c.Year)
	}
	return c.Raw
}

// BibliographyEntry is one parsed reference. Immutable once created.
type BibliographyEntry struct {
	// Key is the normalized author identity. Empty when no author parsed.
	Key AuthorKey `json:"key,omitempty" yaml:"key,omitempty"`

	// Authors lists the parsed author surnames in entry order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Year is the publication year. Zero when no year was found.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Number is the literal bracket index for numbered entries, -1 otherwise.
	Number int `json:"number" yaml:"number"`

	// Raw is the full entry text.
	Raw string `json:"raw" yaml:"raw"`

	// Pos is the entry's position within the bibliography block, in listing order.
	Pos int `json:"pos" yaml:"pos"`
}

// Label returns a short identity for reports, e.g. "[1]" or "Brown, 2018".
func (e BibliographyEntry) Label() string {
	if e.Number >= 0 {
		return fmt.Sprintf("[%d]", e.Number)
	}
	if len(e.Authors) > 0 && e.Year > 0 {
		return fmt.Sprintf("%s, %d", e.Authors[0], e.Year)
	}
	if len(e.Raw) > 50 {
		return e.Raw[:50]
	}
	return e.Raw
}

// YearMismatch pairs a citation with a same-author bibliography entry
// that lists a different year.
type YearMismatch struct {
	Citation Citation          `json:"citation" yaml:"citation"`
	Entry    BibliographyEntry `json:"entry" yaml:"entry"`
}

// CheckResult aggregates the outcome of one manuscript check. It is built
// once by the cross-referencer and read-only thereafter.
type CheckResult struct {
	// Citations holds every in-text citation found, in source order.
	Citations []Citation `json:"citations" yaml:"citations"`

	// Entries holds every bibliography entry parsed, in listing order.
	Entries []BibliographyEntry `json:"entries" yaml:"entries"`

	// Missing lists citations with no matching bibliography entry.
	Missing []Citation `json:"missing" yaml:"missing"`

	// Uncited lists bibliography entries never cited in the text.
	Uncited []BibliographyEntry `json:"uncited" yaml:"uncited"`

	// Mismatches lists same-author pairs whose years differ.
	Mismatches []YearMismatch `json:"mismatches" yaml:"mismatches"`

	// NoBibliography reports that no recognized bibliography header was
	// found. This is a normal, reportable state, not a failure.
	NoBibliography bool `json:"no_bibliography" yaml:"no_bibliography"`
}

// HasIssues reports whether any of the three inconsistency lists is non-empty.
func (r CheckResult) HasIssues() bool {
	return len(r.Missing) > 0 || len(r.Uncited) > 0 || len(r.Mismatches) > 0
}

// NoCitations reports that no in-text citations were found.
func (r CheckResult) NoCitations() bool {
	return len(r.Citations) == 0
}
