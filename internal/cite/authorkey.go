// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite is the citation cross-checking engine. It extracts in-text
// citations and bibliography entries from manuscript text and classifies
// every inconsistency between the two: citations with no matching entry,
// entries never cited, and same-author pairs whose years differ.
package cite

import (
	"regexp"
	"strings"

	"github.com/pdiddy/citecheck/pkg/types"
)

// etAlRe matches every accepted "et al." variant, including "and others".
var etAlRe = regexp.MustCompile(`(?i)\bet\.?\s+al\.?|\bet\s*al\b\.?|\band\s+others\b`)

// andSepRe splits author lists on "and" or "&" connectors.
var andSepRe = regexp.MustCompile(`\s*&\s*|\s+and\s+`)

// citationPrefixes are lead-ins stripped before author parsing, longest
// first so "see also" wins over "see".
var citationPrefixes = []string{
	"e.g.,", "e.g.", "eg.",
	"i.e.,", "i.e.", "ie.",
	"but see", "but cf.", "see also", "see",
	"cf.", "cf",
	"contra", "compare",
}

// NormalizeAuthors reduces raw author text to its canonical AuthorKey.
// The function is pure: identical input always yields the identical key.
func NormalizeAuthors(raw string) types.AuthorKey {
	surnames, etAl := SplitAuthors(raw)
	return KeyFor(surnames, etAl)
}

// SplitAuthors returns the surnames named in raw author text, in writing
// order, and whether an "et al." marker was present. Citation prefixes
// ("see", "cf.", "e.g.,") are stripped first.
func SplitAuthors(raw string) ([]string, bool) {
	s := stripPrefixes(strings.TrimSpace(raw))

	etAl := etAlRe.MatchString(s)
	s = strings.TrimSpace(etAlRe.ReplaceAllString(s, ""))
	if s == "" {
		return nil, etAl
	}

	hasAnd := andSepRe.MatchString(s)
	hasComma := strings.Contains(s, ",")

	var parts []string
	switch {
	case hasComma && hasAnd:
		// Three or more authors: "Gidron, Adams, and Horne".
		parts = strings.Split(andSepRe.ReplaceAllString(s, ","), ",")
	case hasAnd:
		parts = andSepRe.Split(s, -1)
	case hasComma:
		parts = strings.Split(s, ",")
	default:
		parts = []string{s}
	}

	var surnames []string
	for _, p := range parts {
		if name := surname(p); name != "" {
			surnames = append(surnames, name)
		}
	}
	return surnames, etAl
}

// KeyFor builds the canonical key from already-extracted surnames: the
// lead surname alone for single authors, and the lead surname plus
// "+etal" for every multi-author form. "Smith et al.", "Smith and
// Jones", and an explicit three-author listing led by Smith all carry
// the same key, so an et-al citation matches its fully-listed entry.
func KeyFor(surnames []string, etAl bool) types.AuthorKey {
	folded := make([]string, 0, len(surnames))
	for _, s := range surnames {
		if f := foldName(s); f != "" {
			folded = append(folded, f)
		}
	}
	switch {
	case len(folded) == 0:
		return ""
	case etAl || len(folded) > 1:
		return types.AuthorKey(folded[0] + "+etal")
	default:
		return types.AuthorKey(folded[0])
	}
}

// surname extracts the family name from one author token: the last word
// longer than an initial, with trailing punctuation removed. Hyphens,
// apostrophes, and accented characters are preserved.
func surname(name string) string {
	name = strings.TrimSpace(strings.Trim(strings.TrimSpace(name), ".,;:"))
	if name == "" {
		return ""
	}
	words := strings.Fields(name)
	// Prefer the last word that is more than an initial ("Jessica LP
	// Weeks" yields "Weeks", "Smith, J." yields "Smith").
	for i := len(words) - 1; i >= 0; i-- {
		w := strings.Trim(words[i], ".,;:")
		if len(strings.ReplaceAll(w, ".", "")) > 1 {
			return w
		}
	}
	// Only initials: not a usable surname.
	return ""
}

// foldName case-folds a surname for key comparison.
func foldName(s string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(s), ".,;:"))
}

// stripPrefixes removes one leading citation prefix such as "see" or "cf.".
func stripPrefixes(s string) string {
	lower := strings.ToLower(s)
	for _, p := range citationPrefixes {
		if strings.HasPrefix(lower, p) {
			rest := s[len(p):]
			// A bare-word prefix must end at a word boundary so "Seed"
			// is not stripped to "d".
			if !strings.HasSuffix(p, ".") && !strings.HasSuffix(p, ",") {
				if rest != "" && rest[0] != ' ' {
					continue
				}
			}
			return strings.TrimSpace(rest)
		}
	}
	return s
}
