// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/citecheck/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Check manuscripts from an interactive terminal screen",
	Long: `Interactive opens a full-screen terminal interface: enter a manuscript
path, read the colored report, scroll through it, and re-check after
editing without restarting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bibSection, _ := cmd.Flags().GetString("bib-section")
		return tui.Run(checkSectionNames(bibSection))
	},
}

func init() {
	interactiveCmd.Flags().StringP("bib-section", "b", "", `custom name for the bibliography section (e.g. "Works Cited")`)

	rootCmd.AddCommand(interactiveCmd)
}
