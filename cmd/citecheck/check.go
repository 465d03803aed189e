// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citecheck/internal/cite"
	"github.com/pdiddy/citecheck/internal/document"
	"github.com/pdiddy/citecheck/internal/history"
	"github.com/pdiddy/citecheck/internal/report"
	"github.com/pdiddy/citecheck/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Check a manuscript for citation-bibliography consistency",
	Long: `Check reads a manuscript (.txt, .md, .tex, .docx, .pdf), extracts its
in-text citations and bibliography entries, and reports missing
bibliography entries, uncited references, and year mismatches.

The command exits with status 1 when inconsistencies are found, so it
can gate a writing pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringP("bib-section", "b", "", `custom name for the bibliography section (e.g. "Works Cited")`)
	checkCmd.Flags().StringP("output", "o", "", "save the report to a file (.yaml/.yml for structured output)")
	checkCmd.Flags().BoolP("verbose", "v", false, "list every citation and bibliography entry found")
	checkCmd.Flags().Bool("no-color", false, "disable colored output")
	checkCmd.Flags().Bool("record", false, "record this run in the local check history")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	bibSection, _ := cmd.Flags().GetString("bib-section")
	output, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	record, _ := cmd.Flags().GetBool("record")

	text, err := document.ReadFile(path)
	if err != nil {
		return err
	}

	opts := cite.Options{SectionNames: checkSectionNames(bibSection)}
	fmt.Fprintf(os.Stderr, "Checking %s...\n", path)
	result := cite.Check(text, opts)

	// Color applies to terminal output only; report files stay plain.
	formatter := report.NewFormatter(!noColor && output == "")
	rendered := formatter.Format(result)
	if verbose {
		rendered = formatter.FormatVerbose(result)
	}

	switch {
	case output == "":
		fmt.Fprintln(os.Stdout, rendered)
	case strings.HasSuffix(output, ".yaml") || strings.HasSuffix(output, ".yml"):
		if err := report.WriteYAML(output, path, result); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report saved to %s\n", output)
	default:
		if err := report.WriteText(output, rendered); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report saved to %s\n", output)
	}

	if record {
		if err := recordRun(path, result); err != nil {
			return err
		}
	}

	if result.HasIssues() {
		return fmt.Errorf("%d inconsistencies found",
			len(result.Missing)+len(result.Uncited)+len(result.Mismatches))
	}
	return nil
}

// checkSectionNames resolves the header-name override: the flag wins,
// then the config file, then the built-in defaults (empty slice).
func checkSectionNames(flagValue string) []string {
	if flagValue != "" {
		return []string{flagValue}
	}
	return viper.GetStringSlice("check.section_names")
}

func recordRun(path string, result types.CheckResult) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.Record(context.Background(), filepath.Clean(path), result)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Recorded as run %d\n", runID)
	return nil
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		HistoryDir: viper.GetString("history.dir"),
		MaxRuns:    viper.GetInt("history.max_runs"),
	}
}
