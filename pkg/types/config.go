// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultSectionNames lists the bibliography header names recognized when
// no override is configured.
func DefaultSectionNames() []string {
	return []string{"References", "Bibliography", "Works Cited", "Literature Cited"}
}

// CheckConfig holds settings for the citation check stage.
type CheckConfig struct {
	// SectionNames overrides the recognized bibliography header names.
	// Empty means the default set.
	SectionNames []string `json:"section_names,omitempty" yaml:"section_names,omitempty"`
}

// ReportConfig holds settings for report rendering.
type ReportConfig struct {
	// Color enables ANSI-styled terminal output.
	Color bool `json:"color" yaml:"color"`

	// Verbose appends the full citation and entry listings to the report.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// HistoryConfig holds settings for the check-run history store.
type HistoryConfig struct {
	// HistoryDir is the directory containing the history database
	// (e.g. ".citecheck/").
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// MaxRuns is the default maximum number of runs listed (default 20).
	MaxRuns int `json:"max_runs" yaml:"max_runs"`
}

// AppConfig groups all stage configurations.
type AppConfig struct {
	Check   CheckConfig   `json:"check" yaml:"check"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	History HistoryConfig `json:"history" yaml:"history"`
}
