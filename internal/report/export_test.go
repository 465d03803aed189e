package report

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestWriteYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	if err := WriteYAML(path, "paper.md", sampleResult()); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshaling export: %v", err)
	}
	if doc.Path != "paper.md" {
		t.Errorf("path = %q, want paper.md", doc.Path)
	}
	if doc.CheckedAt.IsZero() {
		t.Error("checked_at not set")
	}
	if len(doc.Result.Missing) != 1 || doc.Result.Missing[0].Raw != "(Brown, 2021)" {
		t.Errorf("missing = %+v, want the brown citation", doc.Result.Missing)
	}
	if len(doc.Result.Mismatches) != 1 {
		t.Errorf("mismatches = %+v, want 1", doc.Result.Mismatches)
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	rendered := NewFormatter(false).Format(sampleResult())
	if err := WriteText(path, rendered); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if string(data) != rendered {
		t.Error("written report differs from rendered report")
	}
}
