package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func writeManuscript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paper.txt")
	content := "A claim (Smith, 2020).\n\nReferences\n\nSmith, J. (2020). Title. Press.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing manuscript: %v", err)
	}
	return path
}

func sizedApp(t *testing.T) App {
	t.Helper()
	model, _ := New(nil).Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app, ok := model.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", model)
	}
	return app
}

func TestCheckFlowReachesReport(t *testing.T) {
	path := writeManuscript(t)
	app := sizedApp(t)

	app.input.SetValue(path)
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)
	if cmd == nil {
		t.Fatal("enter on a filled prompt must start a check")
	}

	msg := cmd()
	done, ok := msg.(checkDoneMsg)
	if !ok {
		t.Fatalf("check command returned %T, want checkDoneMsg", msg)
	}
	if done.err != nil {
		t.Fatalf("check failed: %v", done.err)
	}

	model, _ = app.Update(done)
	app = model.(App)
	if app.state != stateReport {
		t.Fatalf("state = %v, want report screen", app.state)
	}
	if !strings.Contains(app.View(), path) {
		t.Errorf("report view does not name the checked file:\n%s", app.View())
	}
	if !strings.Contains(done.rendered, "Citation Cross-Check Report") {
		t.Errorf("rendered report missing header:\n%s", done.rendered)
	}
}

func TestCheckErrorStaysOnPrompt(t *testing.T) {
	app := sizedApp(t)

	app.input.SetValue(filepath.Join(t.TempDir(), "missing.txt"))
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)
	if cmd == nil {
		t.Fatal("enter on a filled prompt must start a check")
	}

	done := cmd().(checkDoneMsg)
	if done.err == nil {
		t.Fatal("check of a missing file must fail")
	}

	model, _ = app.Update(done)
	app = model.(App)
	if app.state != statePrompt {
		t.Fatalf("state = %v, want prompt screen after failed check", app.state)
	}
	if !strings.Contains(app.View(), "missing.txt") {
		t.Errorf("prompt view does not show the error:\n%s", app.View())
	}
}

func TestEscReturnsToPrompt(t *testing.T) {
	path := writeManuscript(t)
	app := sizedApp(t)

	app.input.SetValue(path)
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)
	model, _ = app.Update(cmd().(checkDoneMsg))
	app = model.(App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(App)
	if app.state != statePrompt {
		t.Fatalf("state = %v, want prompt screen after esc", app.state)
	}
}

func TestRecheckUsesLastPath(t *testing.T) {
	path := writeManuscript(t)
	app := sizedApp(t)

	app.input.SetValue(path)
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)
	model, _ = app.Update(cmd().(checkDoneMsg))
	app = model.(App)

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd == nil {
		t.Fatal("r on the report screen must start a re-check")
	}
	done := cmd().(checkDoneMsg)
	if done.path != path {
		t.Errorf("re-check path = %q, want %q", done.path, path)
	}
}

func TestEnterOnEmptyPromptDoesNothing(t *testing.T) {
	app := sizedApp(t)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter on an empty prompt must not start a check")
	}
}
