package steps

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skipflow/catalog"
	"skipflow/core"
	"skipflow/widgets"
)

// SelectSkipStep shows the skip range as a tab strip with a pricing card for
// the highlighted size. Choosing a tab moves it to the front of the strip;
// the remaining tabs always keep their catalogue order behind it.
type SelectSkipStep struct {
	active        int // canonical catalogue index of the front tab
	cursor        int // position in the displayed (frontloaded) order
	preferredSize int
}

func NewSelectSkipStep(preferredSize int) *SelectSkipStep {
	return &SelectSkipStep{preferredSize: preferredSize}
}

func (s *SelectSkipStep) Step() core.WizardStep { return core.StepSelectSkip }
func (s *SelectSkipStep) Title() string         { return core.StepSelectSkip.Title() }

func (s *SelectSkipStep) InitStep(m *core.Model) tea.Cmd {
	if idx, ok := catalog.IndexBySize(m.Catalog, s.preferredSize); ok {
		s.active = idx
		return nil
	}
	s.active = catalog.MostPopularIndex(m.Catalog)
	if s.preferredSize > 0 && len(m.Catalog) > 0 {
		return core.StatusCmd(fmt.Sprintf("No %d yard skip here — showing our most popular size", s.preferredSize))
	}
	return nil
}

// Highlighted is the skip under the strip cursor; the detail modal opens on
// it.
func (s *SelectSkipStep) Highlighted(m *core.Model) (catalog.Skip, bool) {
	order := core.FrontloadOrder(len(m.Catalog), s.active)
	if len(order) == 0 || s.cursor >= len(order) {
		return catalog.Skip{}, false
	}
	return m.Catalog[order[s.cursor]], true
}

func (s *SelectSkipStep) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	order := core.FrontloadOrder(len(m.Catalog), s.active)
	switch {
	case m.IsAction(key, "option-prev"):
		s.cursor = moveCursor(s.cursor, -1, len(order))
	case m.IsAction(key, "option-next"):
		s.cursor = moveCursor(s.cursor, 1, len(order))
	case m.IsAction(key, "option-choose"):
		if len(order) == 0 {
			return nil
		}
		skip := m.Catalog[order[s.cursor]]
		if HeavyWasteSelected(m.Wizard.Selection()) && !skip.AllowsHeavyWaste {
			m.SetStatus(fmt.Sprintf("%s doesn't take heavy waste — pick a size that does", skip.Name))
			return nil
		}
		s.active = order[s.cursor]
		s.cursor = 0
		m.Wizard.SetSkipID(skip.ID)
		m.Wizard.SetGate(core.StepSelectSkip, true)
		m.SetStatus(fmt.Sprintf("%s selected — %s inc VAT", skip.Name, widgets.PriceLabel(m.Currency, skip.FinalPrice)))
	}
	return nil
}

func (s *SelectSkipStep) GateHint(m *core.Model) string {
	return "Choose a skip size to continue"
}

var (
	tabActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa")).Padding(0, 1)
	tabCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true).Padding(0, 1)
	tabIdleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Padding(0, 1)
)

func (s *SelectSkipStep) Build(m *core.Model) widgets.Widget {
	order := core.FrontloadOrder(len(m.Catalog), s.active)
	if len(order) == 0 {
		return widgets.Pane{Title: "Choose your skip", Height: 6, Content: "No skips available for this postcode"}
	}

	sel := m.Wizard.Selection()
	tabs := make([]string, len(order))
	for pos, idx := range order {
		label := fmt.Sprintf("%dyd", m.Catalog[idx].Size)
		switch {
		case idx == s.active:
			tabs[pos] = tabActiveStyle.Render(label)
		case pos == s.cursor:
			tabs[pos] = tabCursorStyle.Render(label)
		default:
			tabs[pos] = tabIdleStyle.Render(label)
		}
	}

	skip := m.Catalog[order[s.cursor]]
	lines := []string{
		fmt.Sprintf("%d day hire period", skip.HirePeriodDays),
		skip.DeliveryTime,
		"Holds " + skip.Metadata.Capacity,
	}
	if HeavyWasteSelected(sel) && !skip.AllowsHeavyWaste {
		lines = append(lines, "Unsuitable for your heavy waste")
	}
	card := widgets.Card{
		Name:         skip.Name,
		Price:        widgets.PriceLabel(m.Currency, skip.FinalPrice),
		PriceNote:    "inc VAT",
		Lines:        lines,
		Restrictions: skip.Restrictions,
		Chosen:       skip.ID == sel.SkipID,
	}

	return widgets.VStack{
		Widgets: []widgets.Widget{
			textWidget(strings.Join(tabs, " ")),
			card,
		},
		Ratios:  []float64{1, 6},
		Spacing: 1,
	}
}
