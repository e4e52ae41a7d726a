package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is one palette entry. A command bound to a wizard step via Step is
// automatically unavailable while that step is unreachable; Disabled adds
// further per-command conditions on top.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Step        WizardStep
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

// CommandRegistry keeps commands in registration order, which is also the
// palette's order within each availability group. Re-registering an ID
// replaces the command in place.
type CommandRegistry struct {
	order []string
	byID  map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	r := &CommandRegistry{byID: make(map[string]Command)}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if _, seen := r.byID[c.ID]; !seen {
		r.order = append(r.order, c.ID)
	}
	r.byID[c.ID] = c
}

// availability folds the step gate into the command's own Disabled check.
func (r *CommandRegistry) availability(c Command, m *Model) (disabled bool, reason string) {
	if c.Step.Valid() && !m.Wizard.Reachable(c.Step) {
		return true, "finish the steps in between first"
	}
	if c.Disabled != nil {
		return c.Disabled(m)
	}
	return false, ""
}

// Search filters by scope and a case-insensitive substring over name,
// description and ID, then floats available commands above unavailable
// ones without reordering within either group.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.order))
	for _, id := range r.order {
		c := r.byID[id]
		if !scopeAllows(c.Scopes, scope) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(c.Name+" "+c.Description+" "+c.ID), q) {
			continue
		}
		disabled, reason := r.availability(c, m)
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
		})
	}
	slices.SortStableFunc(results, func(a, b CommandResult) int {
		switch {
		case a.Disabled == b.Disabled:
			return 0
		case a.Disabled:
			return 1
		default:
			return -1
		}
	})
	return results
}

// Execute runs a command by ID, re-checking availability at execution time:
// the wizard may have moved since the palette listed it.
func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.byID[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if disabled, reason := r.availability(c, m); disabled {
		if reason == "" {
			reason = "command is not available right now"
		}
		return StatusCmd(reason)
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
