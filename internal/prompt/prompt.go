// Package prompt implements the interactive table selection shown when no
// --table flag is supplied
package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user quits the selection without choosing
var ErrAborted = fmt.Errorf("selection aborted")

// Terminal is the interactive Prompter implementation. It blocks the calling
// goroutine until the user confirms a choice; there is no timeout.
type Terminal struct{}

// Select presents the options in a full-screen picker and returns the chosen
// value. Arrow keys (or j/k) move the cursor, enter confirms, esc/q aborts.
func (Terminal) Select(title string, options []string, defaultIndex int) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}

	m := newModel(title, options, defaultIndex)
	program := tea.NewProgram(m)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("selection failed: %w", err)
	}

	result, ok := final.(model)
	if !ok || result.aborted || !result.chosen {
		return "", ErrAborted
	}
	return result.options[result.cursor], nil
}

// Static is a non-interactive Prompter that always answers with the option at
// Index (clamped to the default when out of range). It exists for tests and
// scripted runs.
type Static struct {
	Index int
}

// Select returns the option at the configured index without blocking
func (s Static) Select(title string, options []string, defaultIndex int) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}
	index := s.Index
	if index < 0 || index >= len(options) {
		index = defaultIndex
	}
	if index < 0 || index >= len(options) {
		index = 0
	}
	return options[index], nil
}

// model is the bubbletea state for the picker
type model struct {
	title   string
	options []string
	cursor  int
	chosen  bool
	aborted bool
}

func newModel(title string, options []string, defaultIndex int) model {
	cursor := defaultIndex
	if cursor < 0 || cursor >= len(options) {
		cursor = 0
	}
	return model{title: title, options: options, cursor: cursor}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.title + "\n\n")
	for i, option := range m.options {
		indicator := "  "
		if i == m.cursor {
			indicator = "=>"
		}
		fmt.Fprintf(&b, " %s %s\n", indicator, option)
	}
	b.WriteString("\n(enter to confirm, q to abort)\n")
	return b.String()
}
