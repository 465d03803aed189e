package report

import (
	"strings"
	"testing"

	"github.com/pdiddy/citecheck/pkg/types"
)

func sampleResult() types.CheckResult {
	smith := types.Citation{Style: types.StyleAPA, Key: "smith", Authors: []string{"Smith"}, Year: 2020, Number: -1, Raw: "(Smith, 2020)"}
	brown := types.Citation{Style: types.StyleAPA, Key: "brown", Authors: []string{"Brown"}, Year: 2021, Number: -1, Raw: "(Brown, 2021)"}
	garcia := types.Citation{Style: types.StyleAPA, Key: "garcia", Authors: []string{"Garcia"}, Year: 2022, Number: -1, Raw: "(Garcia, 2022)"}

	smithEntry := types.BibliographyEntry{Key: "smith", Authors: []string{"Smith"}, Year: 2020, Number: -1, Raw: "Smith, J. (2020). Title."}
	garciaEntry := types.BibliographyEntry{Key: "garcia", Authors: []string{"Garcia"}, Year: 2023, Number: -1, Raw: "Garcia, P. (2023). Title.", Pos: 1}
	davisEntry := types.BibliographyEntry{Key: "davis", Authors: []string{"Davis"}, Year: 2018, Number: -1, Raw: "Davis, K. (2018). Title.", Pos: 2}

	return types.CheckResult{
		Citations:  []types.Citation{smith, brown, garcia},
		Entries:    []types.BibliographyEntry{smithEntry, garciaEntry, davisEntry},
		Missing:    []types.Citation{brown},
		Uncited:    []types.BibliographyEntry{davisEntry},
		Mismatches: []types.YearMismatch{{Citation: garcia, Entry: garciaEntry}},
	}
}

func TestFormatReportsAllSections(t *testing.T) {
	out := NewFormatter(false).Format(sampleResult())

	for _, want := range []string{
		"Citation Cross-Check Report",
		"MISSING BIBLIOGRAPHY ENTRIES:",
		"(Brown, 2021)",
		"UNCITED REFERENCES:",
		"Davis, 2018",
		"POTENTIAL YEAR MISMATCHES:",
		"(Garcia, 2022)",
		"Total in-text citations: 3",
		"Total bibliography entries: 3",
		"Missing bibliography entries: 1",
		"Uncited references: 1",
		"Potential year mismatches: 1",
		"Status: INCONSISTENCIES FOUND",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCleanResult(t *testing.T) {
	r := types.CheckResult{
		Citations: []types.Citation{{Style: types.StyleAPA, Key: "smith", Year: 2020, Number: -1, Raw: "(Smith, 2020)"}},
		Entries:   []types.BibliographyEntry{{Key: "smith", Year: 2020, Number: -1, Raw: "Smith, J. (2020). Title."}},
	}
	out := NewFormatter(false).Format(r)

	for _, want := range []string{
		"✓ All citations have bibliography entries",
		"✓ All bibliography entries are cited",
		"Status: ALL CHECKS PASSED",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "MISSING BIBLIOGRAPHY ENTRIES") {
		t.Error("clean result rendered the missing section")
	}
}

// A document with no bibliography is reported as a state, not as a pile
// of missing entries only.
func TestFormatNoBibliographyNotice(t *testing.T) {
	r := types.CheckResult{NoBibliography: true}
	out := NewFormatter(false).Format(r)

	if !strings.Contains(out, "No bibliography section found.") {
		t.Errorf("notice missing:\n%s", out)
	}
	if !strings.Contains(out, "No in-text citations found.") {
		t.Errorf("no-citations notice missing:\n%s", out)
	}
	if !strings.Contains(out, "Status: ALL CHECKS PASSED") {
		t.Errorf("empty result must still pass:\n%s", out)
	}
}

func TestFormatVerboseListsEverything(t *testing.T) {
	out := NewFormatter(false).FormatVerbose(sampleResult())

	for _, want := range []string{
		"DETAILED INFORMATION",
		"All Citations Found:",
		"1. (Smith, 2020) (apa)",
		"All Bibliography Entries:",
		"3. Davis, 2018",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatColorModeKeepsContent(t *testing.T) {
	plain := NewFormatter(false).Format(sampleResult())
	colored := NewFormatter(true).Format(sampleResult())

	// Styling may add escape codes but never drops report text.
	for _, want := range []string{"MISSING BIBLIOGRAPHY ENTRIES:", "(Brown, 2021)", "SUMMARY:"} {
		if !strings.Contains(colored, want) {
			t.Errorf("colored report missing %q", want)
		}
	}
	if len(colored) < len(plain) {
		t.Error("colored report shorter than plain report")
	}
}
