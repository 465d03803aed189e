// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import "github.com/pdiddy/citecheck/pkg/types"

// Options configures a manuscript check.
type Options struct {
	// SectionNames overrides the bibliography header names to search for.
	// Empty means the default set (References, Bibliography, Works Cited,
	// Literature Cited).
	SectionNames []string
}

// Check runs the full cross-check over one manuscript: citation
// extraction, bibliography extraction, and cross-referencing. Citations
// are read only from the text preceding the bibliography header, so
// bibliography text is never double-counted; when no header exists the
// whole text is scanned and the result carries the NoBibliography state.
// Check never fails: any input, including the empty string, produces a
// well-formed result.
func Check(text string, opts Options) types.CheckResult {
	names := opts.SectionNames
	if len(names) == 0 {
		names = types.DefaultSectionNames()
	}

	body := text
	loc := locateSection(text, names)
	if loc.found {
		body = text[:loc.headerStart]
	}

	citations := ExtractCitations(body)
	entries, found := ExtractBibliography(text, names)
	missing, uncited, mismatches := CrossReference(citations, entries)

	return buildResult(citations, entries, missing, uncited, mismatches, !found)
}

// buildResult assembles the immutable CheckResult handed to reporting
// collaborators. Construction is the only side effect.
func buildResult(citations []types.Citation, entries []types.BibliographyEntry, missing []types.Citation, uncited []types.BibliographyEntry, mismatches []types.YearMismatch, noBibliography bool) types.CheckResult {
	return types.CheckResult{
		Citations:      citations,
		Entries:        entries,
		Missing:        missing,
		Uncited:        uncited,
		Mismatches:     mismatches,
		NoBibliography: noBibliography,
	}
}
