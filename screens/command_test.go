package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"skipflow/core"
)

func fixedSearch(results []core.CommandResult) func(string) []core.CommandResult {
	return func(string) []core.CommandResult { return results }
}

func TestCommandScreenSelectEmitsExecuteMessage(t *testing.T) {
	s := NewCommandScreen("Select Skip",
		fixedSearch([]core.CommandResult{{CommandID: "restart", Name: "Restart booking"}}))

	_, cmd, closed := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !closed {
		t.Fatal("selection should close the palette")
	}
	if cmd == nil {
		t.Fatal("selection should emit a command")
	}
	msg, ok := cmd().(core.CommandExecuteMsg)
	if !ok || msg.CommandID != "restart" {
		t.Fatalf("message = %#v", cmd())
	}
}

func TestCommandScreenDisabledEntryReportsReason(t *testing.T) {
	s := NewCommandScreen("Postcode",
		fixedSearch([]core.CommandResult{{
			CommandID: "goto-3",
			Name:      "Go to step 3: Select Skip",
			Disabled:  true,
			Reason:    "finish the steps in between first",
		}}))

	_, cmd, closed := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !closed || cmd == nil {
		t.Fatal("disabled selection should close with a status")
	}
	msg, ok := cmd().(core.StatusMsg)
	if !ok || msg.Text != "finish the steps in between first" {
		t.Fatalf("status = %#v", msg)
	}
}

func TestCommandScreenSearchSeesTypedQuery(t *testing.T) {
	var lastQuery string
	s := NewCommandScreen("Payment", func(query string) []core.CommandResult {
		lastQuery = query
		return nil
	})

	for _, r := range "res" {
		s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if lastQuery != "res" {
		t.Fatalf("search query = %q, want %q", lastQuery, "res")
	}
}

func TestCommandScreenEscCloses(t *testing.T) {
	s := NewCommandScreen("Select Skip", fixedSearch(nil))
	_, _, closed := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !closed {
		t.Fatal("esc should close the palette")
	}
}

func TestDetailScreenClosesOnEsc(t *testing.T) {
	s := NewDetailScreen(testSkip(), "£")
	_, _, closed := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !closed {
		t.Fatal("esc should close the detail screen")
	}
	_, _, closed = s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if closed {
		t.Fatal("unrelated keys should not close the detail screen")
	}
}
