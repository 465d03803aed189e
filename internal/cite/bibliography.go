// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// bibliography.go locates the reference section and parses its entries.
package cite

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/citecheck/pkg/types"
)

// sectionLoc is the resolved position of the bibliography section.
type sectionLoc struct {
	headerStart int // byte offset of the header line
	bodyStart   int // byte offset just past the header line
	found       bool
}

// endSectionRe matches section headers that terminate the bibliography,
// so trailing matter is not parsed as entries.
var endSectionRe = regexp.MustCompile(
	`(?mi)^\s*#{0,6}\s*(acknowledgments|acknowledgements|appendix|supplementary\s+materials?|notes|endnotes|footnotes)\s*[:.]?\s*$`)

// locateSection finds the first line consisting solely of one of the
// recognized section names, after trimming markdown heading marks and
// trailing punctuation. Comparison is case-insensitive.
func locateSection(text string, names []string) sectionLoc {
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(strings.TrimSpace(n))
	}

	offset := 0
	for offset <= len(text) {
		line := text[offset:]
		next := len(text) + 1
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
			next = offset + nl + 1
		}
		if isSectionHeader(line, lowered) {
			bodyStart := next
			if bodyStart > len(text) {
				bodyStart = len(text)
			}
			return sectionLoc{headerStart: offset, bodyStart: bodyStart, found: true}
		}
		offset = next
	}
	return sectionLoc{}
}

func isSectionHeader(line string, lowered []string) bool {
	t := strings.TrimSpace(line)
	t = strings.TrimSpace(strings.TrimLeft(t, "#"))
	t = strings.ToLower(strings.TrimRight(t, ":. \t"))
	if t == "" {
		return false
	}
	for _, n := range lowered {
		if t == n {
			return true
		}
	}
	return false
}

// ExtractBibliography locates the bibliography section by header name and
// parses every entry after it, stopping at a trailing section header or
// end of text. The second return value is false when no recognized header
// exists; that is a normal, reportable outcome, not an error.
func ExtractBibliography(text string, names []string) ([]types.BibliographyEntry, bool) {
	if len(names) == 0 {
		names = types.DefaultSectionNames()
	}
	loc := locateSection(text, names)
	if !loc.found {
		return nil, false
	}

	body := text[loc.bodyStart:]
	if m := endSectionRe.FindStringIndex(body); m != nil {
		body = body[:m[0]]
	}

	entries := parseNumberedEntries(body)
	alphaBody := body
	if len(entries) > 0 {
		// Bracket-marked entries own everything from the first marker on;
		// only a preamble could still hold alphabetic entries.
		if m := bibMarkerRe.FindStringIndex(body); m != nil {
			alphaBody = body[:m[0]]
		}
	}
	entries = append(entries, parseAlphaEntries(alphaBody)...)

	for i := range entries {
		entries[i].Pos = i
	}
	return entries, true
}

// --- numbered entries: [1] J. Smith, "Title," Journal, 2020. ---

var bibMarkerRe = regexp.MustCompile(`(?m)^\s*\[(\d+)\]\s*`)

func parseNumberedEntries(body string) []types.BibliographyEntry {
	markers := bibMarkerRe.FindAllStringSubmatchIndex(body, -1)
	entries := make([]types.BibliographyEntry, 0, len(markers))
	for i, m := range markers {
		end := len(body)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		number, err := strconv.Atoi(body[m[2]:m[3]])
		if err != nil {
			continue
		}
		text := strings.TrimSpace(body[m[1]:end])
		surnames, etAl, year := parseEntryAuthorsYear(text)
		entries = append(entries, types.BibliographyEntry{
			Key:     KeyFor(surnames, etAl),
			Authors: surnames,
			Year:    year,
			Number:  number,
			Raw:     "[" + strconv.Itoa(number) + "] " + text,
		})
	}
	return entries
}

// --- alphabetic entries: Smith, J. (2020). Title. Publisher. ---

// alphaEntryStartRe recognizes the "LastName, F." / "LastName, FirstName"
// line start that opens a new entry.
var alphaEntryStartRe = regexp.MustCompile(`^[\p{Lu}][\p{L}'’\-]+,\s+[\p{Lu}]`)

func parseAlphaEntries(body string) []types.BibliographyEntry {
	var entries []types.BibliographyEntry
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		if e, ok := makeAlphaEntry(strings.Join(current, " ")); ok {
			entries = append(entries, e)
		}
		current = nil
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case alphaEntryStartRe.MatchString(line):
			flush()
			current = []string{line}
		default:
			current = append(current, line)
		}
	}
	flush()
	return entries
}

func makeAlphaEntry(text string) (types.BibliographyEntry, bool) {
	surnames, etAl, year := parseEntryAuthorsYear(text)
	if len(surnames) == 0 {
		return types.BibliographyEntry{}, false
	}
	return types.BibliographyEntry{
		Key:     KeyFor(surnames, etAl),
		Authors: surnames,
		Year:    year,
		Number:  -1,
		Raw:     text,
	}, true
}

// --- per-entry author and year extraction ---

// entryYearRe finds 4-digit tokens; entryYear keeps the first one inside
// the plausible publication window so page and volume numbers are not
// misread as years.
var entryYearRe = regexp.MustCompile(`\b(\d{4})[a-z]?\b`)

const (
	minEntryYear = 1400
	maxEntryYear = 2099
)

// entryYear returns the entry's year and the byte offset of its token,
// or (0, -1) when no plausible year occurs.
func entryYear(text string) (int, int) {
	for _, m := range entryYearRe.FindAllStringSubmatchIndex(text, -1) {
		year, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		if year >= minEntryYear && year <= maxEntryYear {
			return year, m[0]
		}
	}
	return 0, -1
}

// parseEntryAuthorsYear extracts the author surnames, an et-al marker,
// and the publication year from one raw bibliography entry. Both
// "LastName, First" and "First LastName" orders are supported.
func parseEntryAuthorsYear(text string) ([]string, bool, int) {
	year, yearPos := entryYear(text)

	var region string
	if yearPos >= 0 {
		region = strings.TrimSpace(text[:yearPos])
		// Quoted titles precede the year in numbered entries; authors
		// never contain quotes, so the title bounds the author block.
		if i := strings.IndexAny(region, `"“`); i >= 0 {
			region = region[:i]
		}
		region = strings.TrimRight(strings.TrimSpace(region), ".,() ")
	} else {
		region = authorRegionWithoutYear(text)
	}

	etAl := etAlRe.MatchString(region)
	region = strings.TrimSpace(etAlRe.ReplaceAllString(region, ""))
	return splitEntryAuthors(region), etAl, year
}

// authorRegionWithoutYear bounds the author block when no year token
// exists: everything before the first quoted title or title sentence.
func authorRegionWithoutYear(text string) string {
	if i := strings.IndexAny(text, `"“'`); i >= 0 {
		text = text[:i]
	}
	if i := strings.Index(text, ". "); i >= 0 {
		// Keep initials ("J. M.") attached; cut only at a real sentence
		// break, i.e. a period following a word longer than an initial.
		words := strings.Fields(text[:i+1])
		if len(words) > 0 && len(strings.Trim(words[len(words)-1], ".")) > 1 {
			text = text[:i]
		}
	}
	if len(text) > 100 {
		text = text[:100]
	}
	return strings.TrimSpace(text)
}

// splitEntryAuthors parses an author block such as
// "Boxell, L., Gentzkow, M., & Shapiro, J." into surnames.
func splitEntryAuthors(region string) []string {
	var out []string
	for _, part := range andSepRe.Split(region, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.Contains(part, ",") {
			if s := surname(part); s != "" {
				out = append(out, s)
			}
			continue
		}
		// Comma parts alternate between surnames and given names:
		// "Boxell, L., Gentzkow, M." and "Boxell, Levi, Gentzkow,
		// Matthew" both list two surnames. Initials always mark a
		// given-name part; a lone capitalized word is a given name
		// right after a surname and a new surname right after a
		// given name.
		expectSurname := false
		for i, cp := range strings.Split(part, ",") {
			cp = strings.TrimSpace(cp)
			if cp == "" {
				continue
			}
			if i == 0 {
				if s := surname(cp); s != "" {
					out = append(out, s)
				}
				continue
			}
			words := realWords(cp)
			switch {
			case len(words) == 0:
				// Bare initials: the preceding author's given name.
				expectSurname = true
			case len(words) >= 2:
				// "Jessica LP Weeks": an author in "First Last"
				// order; the last word is the surname.
				out = append(out, words[len(words)-1])
				expectSurname = false
			case expectSurname:
				out = append(out, words[0])
				expectSurname = false
			default:
				expectSurname = true
			}
		}
	}
	return dedupeStrings(out)
}

// realWords returns the words of s longer than an initial, punctuation
// trimmed.
func realWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, `.,;:"'“”‘’`)
		if len(strings.ReplaceAll(w, ".", "")) > 1 {
			out = append(out, w)
		}
	}
	return out
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		k := strings.ToLower(s)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}
