package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"skipflow/core"
	"skipflow/widgets"
)

type wasteOption struct {
	ID    string
	Label string
	Hint  string
	Heavy bool
}

// wasteOptions is the fixed menu; heavy categories constrain skip choice
// later in the flow.
var wasteOptions = []wasteOption{
	{ID: "household", Label: "Household Waste", Hint: "furniture, appliances, general clearance"},
	{ID: "garden", Label: "Garden Waste", Hint: "soil, turf, branches, plants"},
	{ID: "construction", Label: "Construction Waste", Hint: "bricks, concrete, rubble", Heavy: true},
	{ID: "commercial", Label: "Commercial Waste", Hint: "office and shop clearance"},
}

// HeavyWasteSelected reports whether any chosen waste category counts as
// heavy for skip suitability.
func HeavyWasteSelected(sel core.Selection) bool {
	for _, opt := range wasteOptions {
		if opt.Heavy && sel.HasWasteType(opt.ID) {
			return true
		}
	}
	return false
}

// WasteTypeStep is a multi-select over the waste categories.
type WasteTypeStep struct {
	cursor int
}

func NewWasteTypeStep() *WasteTypeStep { return &WasteTypeStep{} }

func (s *WasteTypeStep) Step() core.WizardStep { return core.StepWasteType }
func (s *WasteTypeStep) Title() string         { return core.StepWasteType.Title() }

func (s *WasteTypeStep) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case m.IsAction(key, "option-prev"):
		s.cursor = moveCursor(s.cursor, -1, len(wasteOptions))
	case m.IsAction(key, "option-next"):
		s.cursor = moveCursor(s.cursor, 1, len(wasteOptions))
	case m.IsAction(key, "option-toggle"), m.IsAction(key, "option-choose"):
		opt := wasteOptions[s.cursor]
		m.Wizard.ToggleWasteType(opt.ID)
		sel := m.Wizard.Selection()
		m.Wizard.SetGate(core.StepWasteType, len(sel.WasteTypes) > 0)
		if opt.Heavy && sel.HasWasteType(opt.ID) {
			m.SetStatus("Heavy waste limits which skip sizes are suitable")
		}
	}
	return nil
}

func (s *WasteTypeStep) GateHint(m *core.Model) string {
	return "Select at least one waste type"
}

func (s *WasteTypeStep) Build(m *core.Model) widgets.Widget {
	sel := m.Wizard.Selection()
	items := make([]widgets.OptionItem, len(wasteOptions))
	for i, opt := range wasteOptions {
		items[i] = widgets.OptionItem{
			Label:  opt.Label,
			Hint:   opt.Hint,
			Chosen: sel.HasWasteType(opt.ID),
		}
	}
	return widgets.Pane{
		Title:   "What are you throwing away?",
		Height:  12,
		Content: widgets.OptionList{Items: items, Cursor: s.cursor}.Render(76, 10),
		Focused: true,
	}
}
