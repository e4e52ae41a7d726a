package steps

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"skipflow/catalog"
	"skipflow/core"
	"skipflow/internal/service"
	"skipflow/widgets"
)

const (
	placementPrivate = "private"
	placementRoad    = "road"
)

// PermitCheckStep asks where the skip stands. Road placement needs a council
// permit and is refused outright for skips not allowed on a public road.
type PermitCheckStep struct {
	cursor int
}

func NewPermitCheckStep() *PermitCheckStep { return &PermitCheckStep{} }

func (s *PermitCheckStep) Step() core.WizardStep { return core.StepPermitCheck }
func (s *PermitCheckStep) Title() string         { return core.StepPermitCheck.Title() }

func (s *PermitCheckStep) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case m.IsAction(key, "option-prev"):
		s.cursor = moveCursor(s.cursor, -1, 2)
	case m.IsAction(key, "option-next"):
		s.cursor = moveCursor(s.cursor, 1, 2)
	case m.IsAction(key, "option-choose"):
		skip, _ := catalog.ByID(m.Catalog, m.Wizard.Selection().SkipID)
		if s.cursor == 1 {
			if !skip.AllowedOnRoad {
				m.SetStatus(fmt.Sprintf("%s can't be placed on a public road — choose private land or a smaller skip", skip.Name))
				return nil
			}
			m.Wizard.SetPermitLocation(placementRoad)
			m.Wizard.SetGate(core.StepPermitCheck, true)
			m.SetStatus(fmt.Sprintf("A council permit is needed — we arrange it (%s)", widgets.PriceLabel(m.Currency, service.PermitFee)))
			return nil
		}
		m.Wizard.SetPermitLocation(placementPrivate)
		m.Wizard.SetGate(core.StepPermitCheck, true)
		m.SetStatus("No permit needed on private land")
	}
	return nil
}

func (s *PermitCheckStep) GateHint(m *core.Model) string {
	return "Tell us where the skip will stand"
}

func (s *PermitCheckStep) Build(m *core.Model) widgets.Widget {
	sel := m.Wizard.Selection()
	skip, haveSkip := catalog.ByID(m.Catalog, sel.SkipID)

	roadHint := fmt.Sprintf("council permit required, %s", widgets.PriceLabel(m.Currency, service.PermitFee))
	if haveSkip && !skip.AllowedOnRoad {
		roadHint = "not available for this skip"
	}
	items := []widgets.OptionItem{
		{Label: "Private land", Hint: "driveway or garden, no permit needed", Chosen: sel.PermitLocation == placementPrivate},
		{Label: "Public road", Hint: roadHint, Chosen: sel.PermitLocation == placementRoad},
	}
	body := widgets.OptionList{Items: items, Cursor: s.cursor}.Render(76, 6)
	if haveSkip && !skip.AllowedOnRoad {
		body += "\n\n! " + catalog.RestrictionNoRoad
	}
	return widgets.Pane{
		Title:   "Where will the skip go?",
		Height:  12,
		Content: body,
		Focused: true,
	}
}
