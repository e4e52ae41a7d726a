package steps

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"skipflow/core"
	"skipflow/widgets"
)

// ChooseDateStep offers delivery dates from a sliding window. Sundays are
// skipped: no deliveries run that day.
type ChooseDateStep struct {
	cursor     int
	dates      []time.Time
	dateFormat string
}

// NewChooseDateStep builds the candidate dates once, at startup. earliestDays
// is the lead time before the first offered date and windowDays the number of
// delivery days offered after it.
func NewChooseDateStep(earliestDays, windowDays int, dateFormat string, now func() time.Time) *ChooseDateStep {
	if now == nil {
		now = time.Now
	}
	start := now().Truncate(24 * time.Hour)
	dates := make([]time.Time, 0, windowDays)
	for day := earliestDays; len(dates) < windowDays; day++ {
		candidate := start.AddDate(0, 0, day)
		if candidate.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, candidate)
	}
	return &ChooseDateStep{dates: dates, dateFormat: dateFormat}
}

func (s *ChooseDateStep) Step() core.WizardStep { return core.StepChooseDate }
func (s *ChooseDateStep) Title() string         { return core.StepChooseDate.Title() }

// Dates exposes the offered window.
func (s *ChooseDateStep) Dates() []time.Time { return s.dates }

func (s *ChooseDateStep) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case m.IsAction(key, "option-prev"):
		s.cursor = moveCursor(s.cursor, -1, len(s.dates))
	case m.IsAction(key, "option-next"):
		s.cursor = moveCursor(s.cursor, 1, len(s.dates))
	case m.IsAction(key, "option-choose"):
		if len(s.dates) == 0 {
			return nil
		}
		chosen := s.dates[s.cursor]
		m.Wizard.SetDeliveryDate(chosen)
		m.Wizard.SetGate(core.StepChooseDate, true)
		m.SetStatus("Delivery on " + chosen.Format(s.dateFormat))
	}
	return nil
}

func (s *ChooseDateStep) GateHint(m *core.Model) string {
	return "Pick a delivery date to continue"
}

func (s *ChooseDateStep) Build(m *core.Model) widgets.Widget {
	sel := m.Wizard.Selection()
	items := make([]widgets.OptionItem, len(s.dates))
	for i, d := range s.dates {
		items[i] = widgets.OptionItem{
			Label:  d.Format(s.dateFormat),
			Chosen: !sel.DeliveryDate.IsZero() && sel.DeliveryDate.Equal(d),
		}
	}
	return widgets.Pane{
		Title:   "When should we deliver?",
		Height:  18,
		Content: widgets.OptionList{Items: items, Cursor: s.cursor}.Render(76, 16),
		Focused: true,
	}
}
