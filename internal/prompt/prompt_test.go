package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestModelNavigation(t *testing.T) {
	options := []string{"taxon_ncbi", "taxon_col", "taxon_gbif"}

	tests := []struct {
		name        string
		startIndex  int
		keys        []string
		wantCursor  int
		wantChosen  bool
		wantAborted bool
	}{
		{"default selection confirmed", 1, []string{"enter"}, 1, true, false},
		{"move down", 0, []string{"down", "enter"}, 1, true, false},
		{"move down with j", 0, []string{"j", "j", "enter"}, 2, true, false},
		{"move up with k", 2, []string{"k", "enter"}, 1, true, false},
		{"cursor stops at top", 0, []string{"up", "up", "enter"}, 0, true, false},
		{"cursor stops at bottom", 2, []string{"down", "enter"}, 2, true, false},
		{"abort with esc", 1, []string{"esc"}, 1, false, true},
		{"abort with q", 1, []string{"q"}, 1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel("pick one", options, tt.startIndex)

			var current tea.Model = m
			for _, key := range tt.keys {
				current, _ = current.Update(keyMsg(key))
			}

			result := current.(model)
			if result.cursor != tt.wantCursor {
				t.Errorf("Expected cursor %d, got %d", tt.wantCursor, result.cursor)
			}
			if result.chosen != tt.wantChosen {
				t.Errorf("Expected chosen=%v, got %v", tt.wantChosen, result.chosen)
			}
			if result.aborted != tt.wantAborted {
				t.Errorf("Expected aborted=%v, got %v", tt.wantAborted, result.aborted)
			}
		})
	}
}

func TestModelView(t *testing.T) {
	m := newModel("Please choose your nomenclature:", []string{"taxon_ncbi", "taxon_col"}, 1)

	view := m.View()
	if !strings.Contains(view, "Please choose your nomenclature:") {
		t.Error("View should contain the title")
	}
	if !strings.Contains(view, "=> taxon_col") {
		t.Error("View should mark the cursor line with =>")
	}
	if !strings.Contains(view, "taxon_ncbi") {
		t.Error("View should list all options")
	}
}

func TestModelInvalidDefaultIndex(t *testing.T) {
	m := newModel("title", []string{"a", "b"}, 7)
	if m.cursor != 0 {
		t.Errorf("Out-of-range default index should clamp to 0, got %d", m.cursor)
	}
}

func TestStaticSelect(t *testing.T) {
	options := []string{"taxon_ncbi", "taxon_col", "taxon_gbif"}

	tests := []struct {
		name         string
		index        int
		defaultIndex int
		want         string
	}{
		{"explicit index", 2, 0, "taxon_gbif"},
		{"negative index falls back to default", -1, 1, "taxon_col"},
		{"out of range falls back to default", 9, 1, "taxon_col"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Static{Index: tt.index}.Select("title", options, tt.defaultIndex)
			if err != nil {
				t.Fatalf("Select() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Select() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStaticSelectEmptyOptions(t *testing.T) {
	if _, err := (Static{}).Select("title", nil, 0); err == nil {
		t.Error("Expected error for empty options")
	}
}
