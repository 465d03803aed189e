// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders a CheckResult for people: a sectioned terminal
// report with optional color, and a structured YAML export for files.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/citecheck/pkg/types"
)

// Formatter renders check results. The zero value renders without color;
// use NewFormatter to pick a mode explicitly.
type Formatter struct {
	red    lipgloss.Style
	green  lipgloss.Style
	yellow lipgloss.Style
	blue   lipgloss.Style
	bold   lipgloss.Style
}

// NewFormatter returns a Formatter, styled when useColor is true and
// plain otherwise.
func NewFormatter(useColor bool) *Formatter {
	f := &Formatter{
		red:    lipgloss.NewStyle(),
		green:  lipgloss.NewStyle(),
		yellow: lipgloss.NewStyle(),
		blue:   lipgloss.NewStyle(),
		bold:   lipgloss.NewStyle(),
	}
	if useColor {
		f.red = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		f.green = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		f.yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		f.blue = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		f.bold = lipgloss.NewStyle().Bold(true)
	}
	return f
}

// Format renders the standard report: the three issue sections, summary
// counts, and a status line.
func (f *Formatter) Format(r types.CheckResult) string {
	var b strings.Builder

	b.WriteString(f.bold.Render("Citation Cross-Check Report"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n\n")

	if r.NoBibliography {
		b.WriteString(f.yellow.Render("No bibliography section found."))
		b.WriteString("\n\n")
	}
	if r.NoCitations() {
		b.WriteString(f.yellow.Render("No in-text citations found."))
		b.WriteString("\n\n")
	}

	if len(r.Missing) > 0 {
		b.WriteString(f.bold.Render(f.red.Render("MISSING BIBLIOGRAPHY ENTRIES:")))
		b.WriteString("\n")
		for _, c := range r.Missing {
			fmt.Fprintf(&b, "  %s Citation '%s' found in text but missing from bibliography\n",
				f.red.Render("✗"), c.Raw)
		}
		b.WriteString("\n")
	} else {
		b.WriteString(f.green.Render("✓ All citations have bibliography entries"))
		b.WriteString("\n\n")
	}

	if len(r.Uncited) > 0 {
		b.WriteString(f.bold.Render(f.yellow.Render("UNCITED REFERENCES:")))
		b.WriteString("\n")
		for _, e := range r.Uncited {
			fmt.Fprintf(&b, "  %s '%s' in bibliography but never cited in text\n",
				f.yellow.Render("✗"), e.Label())
		}
		b.WriteString("\n")
	} else {
		b.WriteString(f.green.Render("✓ All bibliography entries are cited"))
		b.WriteString("\n\n")
	}

	if len(r.Mismatches) > 0 {
		b.WriteString(f.bold.Render(f.blue.Render("POTENTIAL YEAR MISMATCHES:")))
		b.WriteString("\n")
		b.WriteString(f.blue.Render("(Same authors cited and in bibliography, but with different years)"))
		b.WriteString("\n")
		for _, m := range r.Mismatches {
			fmt.Fprintf(&b, "  %s  Citation: %s (year: %d)\n", f.blue.Render("⚠"), m.Citation.Raw, m.Citation.Year)
			fmt.Fprintf(&b, "      Bibliography: %s (year: %d)\n", m.Entry.Label(), m.Entry.Year)
		}
		b.WriteString("\n")
	}

	b.WriteString(f.bold.Render("SUMMARY:"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Total in-text citations: %d\n", len(r.Citations))
	fmt.Fprintf(&b, "  Total bibliography entries: %d\n", len(r.Entries))
	fmt.Fprintf(&b, "  Missing bibliography entries: %s\n", f.red.Render(fmt.Sprintf("%d", len(r.Missing))))
	fmt.Fprintf(&b, "  Uncited references: %s\n", f.yellow.Render(fmt.Sprintf("%d", len(r.Uncited))))
	fmt.Fprintf(&b, "  Potential year mismatches: %s\n", f.blue.Render(fmt.Sprintf("%d", len(r.Mismatches))))
	b.WriteString("\n")

	status := f.green.Render("ALL CHECKS PASSED")
	if r.HasIssues() {
		status = f.red.Render("INCONSISTENCIES FOUND")
	}
	fmt.Fprintf(&b, "Status: %s\n", status)

	return b.String()
}

// FormatVerbose renders the standard report followed by a listing of
// every citation and bibliography entry with its style tag.
func (f *Formatter) FormatVerbose(r types.CheckResult) string {
	var b strings.Builder
	b.WriteString(f.Format(r))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n")
	b.WriteString(f.bold.Render("DETAILED INFORMATION"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n\n")

	b.WriteString(f.bold.Render("All Citations Found:"))
	b.WriteString("\n")
	if len(r.Citations) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, c := range r.Citations {
		fmt.Fprintf(&b, "  %d. %s (%s)\n", i+1, c.Raw, c.Style)
	}
	b.WriteString("\n")

	b.WriteString(f.bold.Render("All Bibliography Entries:"))
	b.WriteString("\n")
	if len(r.Entries) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, e := range r.Entries {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, e.Label())
	}

	return b.String()
}
