// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// crossref.go classifies citations against bibliography entries into the
// three inconsistency categories: missing entries, uncited references,
// and year mismatches.
package cite

import (
	"strconv"

	"github.com/pdiddy/citecheck/pkg/types"
)

// CrossReference compares the extracted citation and entry sequences.
// Numeric citations match by literal index equality; author-year and
// author-page citations match by AuthorKey, with year equality required
// when both sides carry one. A same-key, different-year pair becomes a
// mismatch — the closest year wins, ties broken by earliest entry
// position — and consumes both sides from further consideration. Output
// order mirrors first-occurrence order for citations and listing order
// for entries.
func CrossReference(citations []types.Citation, entries []types.BibliographyEntry) (missing []types.Citation, uncited []types.BibliographyEntry, mismatches []types.YearMismatch) {
	byNumber := make(map[int][]int)
	byKey := make(map[types.AuthorKey][]int)
	for i, e := range entries {
		if e.Number >= 0 {
			byNumber[e.Number] = append(byNumber[e.Number], i)
		}
		if e.Key != "" {
			byKey[e.Key] = append(byKey[e.Key], i)
		}
	}

	cited := make([]bool, len(entries))
	inMismatch := make([]bool, len(entries))

	for _, c := range dedupeCitations(citations) {
		if c.Number >= 0 {
			if idxs, ok := byNumber[c.Number]; ok {
				for _, i := range idxs {
					cited[i] = true
				}
			} else {
				missing = append(missing, c)
			}
			continue
		}
		if c.Key == "" {
			continue
		}

		candidates := byKey[c.Key]

		matched := false
		for _, i := range candidates {
			// A side without a year cannot contradict the other, so it
			// matches any year; MLA citations match on key alone.
			if c.Year == 0 || entries[i].Year == 0 || entries[i].Year == c.Year {
				cited[i] = true
				matched = true
			}
		}
		if matched {
			continue
		}

		// Same author, different year: pick the closest unconsumed entry.
		best := -1
		for _, i := range candidates {
			if inMismatch[i] {
				continue
			}
			if best < 0 || absDiff(entries[i].Year, c.Year) < absDiff(entries[best].Year, c.Year) {
				best = i
			}
		}
		if best >= 0 {
			mismatches = append(mismatches, types.YearMismatch{Citation: c, Entry: entries[best]})
			inMismatch[best] = true
			continue
		}

		missing = append(missing, c)
	}

	for i, e := range entries {
		if !cited[i] && !inMismatch[i] {
			uncited = append(uncited, e)
		}
	}
	return missing, uncited, mismatches
}

// dedupeCitations keeps the first occurrence of each citation identity
// (index for numeric styles, key plus year otherwise) so a work cited
// five times yields one classification, not five.
func dedupeCitations(citations []types.Citation) []types.Citation {
	seen := make(map[string]bool, len(citations))
	var out []types.Citation
	for _, c := range citations {
		var id string
		if c.Number >= 0 {
			id = "[" + strconv.Itoa(c.Number) + "]"
		} else {
			id = string(c.Key) + ":" + strconv.Itoa(c.Year)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, c)
	}
	return out
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
