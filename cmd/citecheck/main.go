// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citecheck CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the citecheck CLI.
var rootCmd = &cobra.Command{
	Use:   "citecheck",
	Short: "Cross-check in-text citations against a manuscript's bibliography",
	Long: `citecheck extracts every in-text citation (APA, Harvard, Chicago, MLA,
and numeric/IEEE styles) and every bibliography entry from a manuscript,
then reports three kinds of inconsistency: citations with no matching
bibliography entry, bibliography entries never cited, and same-author
pairs whose years differ.

Manuscripts may be plain text, Markdown, LaTeX, .docx, or PDF files.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citecheck.yaml or ~/.config/citecheck/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citecheck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citecheck"))
		}
	}

	viper.SetEnvPrefix("CITECHECK")
	viper.AutomaticEnv()

	viper.SetDefault("history.dir", ".citecheck")
	viper.SetDefault("history.max_runs", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
