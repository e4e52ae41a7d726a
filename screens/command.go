package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skipflow/core"
)

// paletteItem adapts a registry search result to the list widget.
type paletteItem struct {
	core.CommandResult
}

func (i paletteItem) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i paletteItem) Description() string { return i.Desc }
func (i paletteItem) FilterValue() string { return i.Name + " " + i.Desc + " " + i.CommandID }

// CommandScreen is the searchable command palette, headed by the wizard
// step it was opened from. Choosing an enabled entry closes the palette and
// emits the command's execute message; choosing a disabled one closes it
// with the reason in the status bar.
type CommandScreen struct {
	stepTitle string
	search    func(query string) []core.CommandResult
	input     textinput.Model
	list      list.Model
}

func NewCommandScreen(stepTitle string, search func(query string) []core.CommandResult) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	s := &CommandScreen{stepTitle: stepTitle, search: search, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Commands" }
func (s *CommandScreen) Scope() string { return "screen:command" }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return s, nil, true
		case "enter":
			it, ok := s.list.SelectedItem().(paletteItem)
			if !ok {
				return s, nil, true
			}
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			id := it.CommandID
			return s, func() tea.Msg { return core.CommandExecuteMsg{CommandID: id} }, true
		}
	}
	var inputCmd tea.Cmd
	s.input, inputCmd = s.input.Update(msg)
	s.refresh()
	var listCmd tea.Cmd
	s.list, listCmd = s.list.Update(msg)
	return s, tea.Batch(inputCmd, listCmd), false
}

func (s *CommandScreen) refresh() {
	results := s.search(strings.TrimSpace(s.input.Value()))
	items := make([]list.Item, len(results))
	for i, r := range results {
		items[i] = paletteItem{r}
	}
	_ = s.list.SetItems(items)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-4))
	return "Commands — " + s.stepTitle + "\n" + s.input.View() + "\n" + s.list.View()
}
