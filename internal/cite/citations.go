// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// citations.go recognizes in-text citations. Each style family is an
// independent matcher strategy returning candidate spans with a
// specificity score; a single resolution pass keeps the most specific
// non-overlapping matches, so a span consumed by one family is never
// reconsidered by a looser one.
package cite

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/citecheck/pkg/types"
)

// Specificity scores, most-constrained first. Parenthetical author-year
// beats the narrative form, which beats MLA author-page, which beats
// bare numeric brackets.
const (
	specParenthetical = 40
	specNarrative     = 30
	specMLA           = 20
	specNumeric       = 10
)

// candidate is a span one matcher claims, with the citations it yields.
// A single span may carry several citations (semicolon groups, numeric
// ranges), all sharing the enclosing position.
type candidate struct {
	start, end  int
	specificity int
	citations   []types.Citation
}

// matcher recognizes one citation style family.
type matcher interface {
	findCandidates(text string) []candidate
}

var matchers = []matcher{
	parentheticalMatcher{},
	narrativeMatcher{},
	mlaMatcher{},
	numericMatcher{},
}

// ExtractCitations scans manuscript text and returns every recognized
// in-text citation in source order. Text that no pattern recognizes is
// silently skipped; an empty result is a valid state, not a failure.
// Callers that want to exclude the bibliography pass only the text
// preceding its header.
func ExtractCitations(text string) []types.Citation {
	var cands []candidate
	for _, m := range matchers {
		cands = append(cands, m.findCandidates(text)...)
	}

	var citations []types.Citation
	for _, c := range resolveCandidates(cands) {
		citations = append(citations, c.citations...)
	}
	sort.SliceStable(citations, func(i, j int) bool {
		return citations[i].Pos < citations[j].Pos
	})
	return citations
}

// resolveCandidates keeps the highest-specificity non-overlapping spans.
// Ties go to the earlier, then longer, span.
func resolveCandidates(cands []candidate) []candidate {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].specificity != cands[j].specificity {
			return cands[i].specificity > cands[j].specificity
		}
		if cands[i].start != cands[j].start {
			return cands[i].start < cands[j].start
		}
		return cands[i].end-cands[i].start > cands[j].end-cands[j].start
	})

	var accepted []candidate
	for _, c := range cands {
		overlaps := false
		for _, a := range accepted {
			if c.start < a.end && a.start < c.end {
				overlaps = true
				break
			}
		}
		if !overlaps {
			accepted = append(accepted, c)
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].start < accepted[j].start
	})
	return accepted
}

// --- parenthetical author-year: (Smith, 2020), (Smith 2020; Jones 2021) ---

var (
	// parenRe captures any parenthesized run without nesting.
	parenRe = regexp.MustCompile(`\(([^()]+)\)`)

	// innerCiteRe extracts one author-year pair inside parentheses. The
	// optional comma before the year separates APA from Harvard form.
	innerCiteRe = regexp.MustCompile(`([\p{Lu}][\p{L}\s&,.'’\-]+?)(,?)\s*(\d{4}[a-z]?)\b`)

	// yearDigitsRe is the cheap pre-check for a 4-digit year.
	yearDigitsRe = regexp.MustCompile(`\d{4}`)
)

type parentheticalMatcher struct{}

func (parentheticalMatcher) findCandidates(text string) []candidate {
	var cands []candidate
	for _, m := range parenRe.FindAllStringSubmatchIndex(text, -1) {
		inner := text[m[2]:m[3]]
		if !yearDigitsRe.MatchString(inner) {
			continue
		}

		var cits []types.Citation
		for _, im := range innerCiteRe.FindAllStringSubmatchIndex(inner, -1) {
			authorText := strings.TrimSpace(inner[im[2]:im[3]])
			comma := inner[im[4]:im[5]]
			yearTok := inner[im[6]:im[7]]

			if isNonAuthor(authorText) {
				continue
			}
			surnames, etAl := SplitAuthors(authorText)
			key := KeyFor(surnames, etAl)
			if key == "" {
				continue
			}

			style := types.StyleAPA
			if comma == "" {
				style = types.StyleHarvard
			}
			cits = append(cits, types.Citation{
				Style:   style,
				Key:     key,
				Authors: surnames,
				Year:    parseYearToken(yearTok),
				Number:  -1,
				Raw:     "(" + strings.TrimSpace(inner[im[0]:im[1]]) + ")",
				Pos:     m[0],
			})
		}
		if len(cits) > 0 {
			cands = append(cands, candidate{m[0], m[1], specParenthetical, cits})
		}
	}
	return cands
}

// --- narrative author-year: Smith (2020), Smith and Jones (2021) ---

var narrativeRe = regexp.MustCompile(
	`([\p{Lu}][\p{L}'’\-]+` +
		`(?:(?:,\s+(?:and\s+|&\s+)?|\s+(?:and|&)\s+)[\p{Lu}][\p{L}'’\-]+)*` +
		`(?:\s+et\s+al\.?)?)` +
		`\s+\((\d{4}[a-z]?)\)`)

type narrativeMatcher struct{}

func (narrativeMatcher) findCandidates(text string) []candidate {
	var cands []candidate
	for _, m := range narrativeRe.FindAllStringSubmatchIndex(text, -1) {
		// A name preceded by ", " is the middle of a listing, not a
		// narrative citation subject.
		if m[0] >= 2 && text[m[0]-2:m[0]] == ", " {
			continue
		}

		authorText := strings.TrimSpace(text[m[2]:m[3]])
		if isNonAuthor(authorText) {
			continue
		}
		surnames, etAl := SplitAuthors(authorText)
		key := KeyFor(surnames, etAl)
		if key == "" {
			continue
		}

		cands = append(cands, candidate{m[0], m[1], specNarrative, []types.Citation{{
			Style:   types.StyleChicago,
			Key:     key,
			Authors: surnames,
			Year:    parseYearToken(text[m[4]:m[5]]),
			Number:  -1,
			Raw:     text[m[0]:m[1]],
			Pos:     m[0],
		}}})
	}
	return cands
}

// --- MLA author-page: (Smith 42), (Smith et al. 45-67) ---

var mlaRe = regexp.MustCompile(`\(([\p{Lu}][\p{L}\s&'’\-]+?(?:\s+et\s+al\.?)?)\s+(\d+(?:-\d+)?)\)`)

type mlaMatcher struct{}

func (mlaMatcher) findCandidates(text string) []candidate {
	var cands []candidate
	for _, m := range mlaRe.FindAllStringSubmatchIndex(text, -1) {
		page := text[m[4]:m[5]]
		// A lone 4-digit "page" is a Harvard year; leave it to the
		// parenthetical family.
		if len(page) == 4 && !strings.Contains(page, "-") {
			continue
		}

		authorText := strings.TrimSpace(text[m[2]:m[3]])
		if isNonAuthor(authorText) {
			continue
		}
		surnames, etAl := SplitAuthors(authorText)
		key := KeyFor(surnames, etAl)
		if key == "" {
			continue
		}

		cands = append(cands, candidate{m[0], m[1], specMLA, []types.Citation{{
			Style:   types.StyleMLA,
			Key:     key,
			Authors: surnames,
			Page:    page,
			Number:  -1,
			Raw:     text[m[0]:m[1]],
			Pos:     m[0],
		}}})
	}
	return cands
}

// --- numeric / IEEE: [1], [1-3], [1,2,5] ---

var numericRe = regexp.MustCompile(`\[(\d+(?:\s*[-,]\s*\d+)*)\]`)

// numericContextWords flag bracketed numbers that are structural
// references, not citations ("Table [1]", "see Figure [2]").
var numericContextWords = []string{"table", "figure", "fig.", "fig", "appendix", "section", "chapter"}

type numericMatcher struct{}

func (numericMatcher) findCandidates(text string) []candidate {
	var cands []candidate
	for _, m := range numericRe.FindAllStringSubmatchIndex(text, -1) {
		start := m[0] - 20
		if start < 0 {
			start = 0
		}
		context := strings.ToLower(text[start:m[0]])
		if hasAnyWord(context, numericContextWords) {
			continue
		}

		indexes := expandIndexes(text[m[2]:m[3]])
		if len(indexes) == 0 {
			continue
		}

		cits := make([]types.Citation, 0, len(indexes))
		for _, n := range indexes {
			cits = append(cits, types.Citation{
				Style:  types.StyleIEEE,
				Number: n,
				Raw:    "[" + strconv.Itoa(n) + "]",
				Pos:    m[0],
			})
		}
		cands = append(cands, candidate{m[0], m[1], specNumeric, cits})
	}
	return cands
}

// expandIndexes parses "1", "1-3", "1,2,5", and mixes of the two into
// the individual indexes cited. Ranges expand inclusively, so partial
// matches inside a range stay visible to the cross-referencer.
func expandIndexes(s string) []int {
	var out []int
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if lo, hi, ok := strings.Cut(piece, "-"); ok {
			a, errA := strconv.Atoi(strings.TrimSpace(lo))
			b, errB := strconv.Atoi(strings.TrimSpace(hi))
			if errA != nil || errB != nil || b < a {
				continue
			}
			for n := a; n <= b; n++ {
				out = append(out, n)
			}
			continue
		}
		if n, err := strconv.Atoi(piece); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// --- shared helpers ---

// nonAuthorWords are capitalized tokens that precede years in prose but
// never name an author: document elements, months, seasons, and the
// usual "around 2011" style qualifiers.
var nonAuthorWords = []string{
	"hypothesis", "table", "figure", "appendix", "section",
	"chapter", "equation", "model", "result", "study",
	"example", "case", "scenario", "version", "step",
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
	"around", "circa", "before", "after", "since", "until",
	"between", "from", "during", "report", "year", "period",
	"spring", "summer", "fall", "autumn", "winter", "quarter",
	"vol", "volume", "issue", "page", "number", "article",
}

func isNonAuthor(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, w := range nonAuthorWords {
		if strings.HasPrefix(lower, w) {
			return true
		}
	}
	return false
}

func hasAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// parseYearToken converts a year token, dropping an optional
// disambiguation letter ("2020a").
func parseYearToken(tok string) int {
	tok = strings.TrimRight(tok, "abcdefghijklmnopqrstuvwxyz")
	year, err := strconv.Atoi(tok)
	if err != nil {
		return 0
	}
	return year
}
