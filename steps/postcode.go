package steps

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skipflow/core"
	"skipflow/internal/service"
	"skipflow/widgets"
)

// PostcodeStep asks where the skip is delivered. The gate opens as soon as
// the typed postcode resolves to a served zone, and tracks every edit.
type PostcodeStep struct {
	input    textinput.Model
	locator  *service.Locator
	resolved bool
}

func NewPostcodeStep(locator *service.Locator, initial string) *PostcodeStep {
	in := textinput.New()
	in.Placeholder = "e.g. NR32 1AB"
	in.Prompt = "> "
	in.CharLimit = 10
	in.Focus()
	if initial != "" {
		in.SetValue(initial)
	}
	return &PostcodeStep{input: in, locator: locator}
}

func (s *PostcodeStep) Step() core.WizardStep { return core.StepPostcode }
func (s *PostcodeStep) Title() string         { return core.StepPostcode.Title() }

func (s *PostcodeStep) InitStep(m *core.Model) tea.Cmd {
	s.revalidate(m)
	return textinput.Blink
}

func (s *PostcodeStep) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if _, isKey := msg.(tea.KeyMsg); isKey {
		s.revalidate(m)
	}
	return cmd
}

// revalidate re-resolves the typed value and keeps the gate in sync. Status
// only changes on resolution transitions so typing does not flood the bar.
func (s *PostcodeStep) revalidate(m *core.Model) {
	match, ok := s.locator.Resolve(s.input.Value())
	if ok {
		m.Wizard.SetPostcode(service.Normalize(s.input.Value()), match.Zone)
		if !s.resolved {
			m.SetStatus(fmt.Sprintf("Delivering to %s (%s)", match.Area, match.Zone))
		}
	}
	m.Wizard.SetGate(core.StepPostcode, ok)
	s.resolved = ok
}

func (s *PostcodeStep) GateHint(m *core.Model) string {
	value := service.Normalize(s.input.Value())
	if !service.PlausiblePostcode(value) {
		return "Enter a postcode to continue"
	}
	if near, ok := s.locator.Suggest(value); ok {
		return fmt.Sprintf("We don't cover %s — did you mean %s (%s)?", service.OutwardCode(value), near.Zone, near.Area)
	}
	return fmt.Sprintf("Sorry, we don't deliver to %s yet", service.OutwardCode(value))
}

func (s *PostcodeStep) Build(m *core.Model) widgets.Widget {
	body := s.input.View() + "\n"
	if s.resolved {
		sel := m.Wizard.Selection()
		if match, ok := s.locator.Resolve(sel.Postcode); ok {
			body += fmt.Sprintf("\n✓ %s — %s skips available", match.Area, match.Zone)
			body += "\nPress enter to continue"
		}
	} else {
		body += "\nWe currently serve:"
		for _, z := range s.locator.Zones() {
			body += fmt.Sprintf("\n  %s  %s", z.Zone, z.Area)
		}
	}
	return widgets.Pane{
		Title:   "Where should we deliver?",
		Height:  12,
		Content: body,
		Focused: true,
	}
}
