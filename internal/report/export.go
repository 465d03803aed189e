// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citecheck/pkg/types"
)

// Document wraps a CheckResult with provenance for file export.
type Document struct {
	Path      string            `json:"path" yaml:"path"`
	CheckedAt time.Time         `json:"checked_at" yaml:"checked_at"`
	Result    types.CheckResult `json:"result" yaml:"result"`
}

// WriteYAML writes the structured result to path as YAML.
func WriteYAML(path, sourcePath string, r types.CheckResult) error {
	doc := Document{
		Path:      sourcePath,
		CheckedAt: time.Now().UTC(),
		Result:    r,
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteText writes an already-rendered report to path.
func WriteText(path, rendered string) error {
	return os.WriteFile(path, []byte(rendered), 0o644)
}
