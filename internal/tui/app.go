// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive check screen. It follows the Elm
// architecture bubbletea expects: App holds the state, Update reacts to
// messages, View renders a string.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/citecheck/internal/cite"
	"github.com/pdiddy/citecheck/internal/document"
	"github.com/pdiddy/citecheck/internal/report"
)

// appState is the screen currently shown.
type appState int

const (
	statePrompt appState = iota // asking for a manuscript path
	stateReport                 // scrolling through a finished report
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// checkDoneMsg carries the outcome of a background check.
type checkDoneMsg struct {
	path     string
	rendered string
	err      error
}

// App is the application model.
type App struct {
	state        appState
	sectionNames []string

	input    textinput.Model
	view     viewport.Model
	lastPath string
	err      error

	width, height int
	ready         bool
}

// New builds the App. sectionNames overrides the bibliography header
// names; empty means the default set.
func New(sectionNames []string) App {
	ti := textinput.New()
	ti.Placeholder = "path/to/manuscript.txt"
	ti.Focus()
	ti.CharLimit = 512

	return App{
		state:        statePrompt,
		sectionNames: sectionNames,
		input:        ti,
	}
}

// Init starts the cursor blink.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key and window messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if !a.ready {
			a.view = viewport.New(msg.Width, msg.Height-4)
			a.ready = true
		} else {
			a.view.Width = msg.Width
			a.view.Height = msg.Height - 4
		}
		return a, nil

	case checkDoneMsg:
		a.err = msg.err
		if msg.err == nil {
			a.state = stateReport
			a.lastPath = msg.path
			a.view.SetContent(msg.rendered)
			a.view.GotoTop()
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			if a.state == stateReport {
				a.state = statePrompt
				a.input.Focus()
				return a, textinput.Blink
			}
			return a, tea.Quit
		case "q":
			if a.state == stateReport {
				return a, tea.Quit
			}
		case "r":
			if a.state == stateReport {
				return a, runCheck(a.lastPath, a.sectionNames)
			}
		case "enter":
			if a.state == statePrompt && a.input.Value() != "" {
				return a, runCheck(a.input.Value(), a.sectionNames)
			}
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case statePrompt:
		a.input, cmd = a.input.Update(msg)
	case stateReport:
		a.view, cmd = a.view.Update(msg)
	}
	return a, cmd
}

// View renders the current screen.
func (a App) View() string {
	switch a.state {
	case stateReport:
		header := titleStyle.Render("citecheck — " + a.lastPath)
		help := helpStyle.Render("↑/↓ scroll · r re-check · esc new file · q quit")
		return fmt.Sprintf("%s\n%s\n%s", header, a.view.View(), help)
	default:
		var errLine string
		if a.err != nil {
			errLine = "\n" + errStyle.Render(a.err.Error())
		}
		return fmt.Sprintf("%s\n\n%s%s\n\n%s",
			titleStyle.Render("citecheck — interactive mode"),
			a.input.View(),
			errLine,
			helpStyle.Render("enter check · esc quit"))
	}
}

// runCheck reads the manuscript, runs the cross-check, and renders the
// colored report off the UI goroutine.
func runCheck(path string, sectionNames []string) tea.Cmd {
	return func() tea.Msg {
		text, err := document.ReadFile(path)
		if err != nil {
			return checkDoneMsg{path: path, err: err}
		}
		result := cite.Check(text, cite.Options{SectionNames: sectionNames})
		rendered := report.NewFormatter(true).Format(result)
		return checkDoneMsg{path: path, rendered: rendered}
	}
}

// Run starts the interactive program in the alternate screen.
func Run(sectionNames []string) error {
	p := tea.NewProgram(New(sectionNames), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
