// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citecheck/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded check runs",
	Long: `History manages the local SQLite database of recorded check runs.
Use "check --record" to add runs, "history list" to see them, and
"history show" to revisit one run's inconsistencies.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show RUN-ID",
	Short: "Show the inconsistencies recorded for one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum runs to list (0 = configured default)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No recorded runs.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCHECKED\tFILE\tCITES\tENTRIES\tMISSING\tUNCITED\tMISMATCH")
	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			r.ID, r.CheckedAt.Local().Format(time.DateTime), r.Path,
			r.Citations, r.Entries, r.Missing, r.Uncited, r.Mismatches)
	}
	return w.Flush()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	runID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID %q", args[0])
	}

	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	issues, err := store.Issues(context.Background(), runID)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Fprintf(os.Stdout, "Run %d recorded no inconsistencies.\n", runID)
		return nil
	}
	for _, i := range issues {
		fmt.Fprintf(os.Stdout, "%-9s %s\n", i.Category+":", i.Detail)
	}
	return nil
}
