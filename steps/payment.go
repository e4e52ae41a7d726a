package steps

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"skipflow/catalog"
	"skipflow/core"
	"skipflow/internal/service"
	"skipflow/widgets"
)

// PaymentStep shows the assembled booking and confirms it. Confirmation
// mints the reference through the booker; payment capture itself happens
// off-app.
type PaymentStep struct {
	booker     service.Booker
	dateFormat string
}

func NewPaymentStep(booker service.Booker, dateFormat string) *PaymentStep {
	return &PaymentStep{booker: booker, dateFormat: dateFormat}
}

func (s *PaymentStep) Step() core.WizardStep { return core.StepPayment }
func (s *PaymentStep) Title() string         { return core.StepPayment.Title() }

func (s *PaymentStep) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsAction(key, "confirm-booking") {
		return nil
	}
	sel := m.Wizard.Selection()
	if sel.Confirmed {
		return core.StatusCmd("Already confirmed: " + sel.Reference)
	}
	skip, _ := catalog.ByID(m.Catalog, sel.SkipID)
	sum, err := s.booker.Confirm(sel, skip)
	if err != nil {
		return core.ErrorCmd(err)
	}
	m.Wizard.SetGate(core.StepPayment, true)
	return func() tea.Msg {
		return core.BookingConfirmedMsg{Reference: sum.Reference}
	}
}

func (s *PaymentStep) Build(m *core.Model) widgets.Widget {
	sel := m.Wizard.Selection()
	skip, haveSkip := catalog.ByID(m.Catalog, sel.SkipID)
	if !haveSkip {
		return widgets.Pane{Title: "Order summary", Height: 6, Content: "No skip selected yet"}
	}

	sum, err := s.booker.Confirm(sel, skip)
	if err != nil {
		return widgets.Pane{Title: "Order summary", Height: 6, Content: "Complete the earlier steps first"}
	}

	lines := []string{
		fmt.Sprintf("Deliver to    %s (%s)", sum.Postcode, sum.Area),
		fmt.Sprintf("Waste         %s", strings.Join(sum.WasteTypes, ", ")),
		fmt.Sprintf("Skip          %s, %d day hire", sum.SkipName, sum.HirePeriodDays),
		fmt.Sprintf("Delivery      %s, %s", sum.DeliveryDate.Format(s.dateFormat), strings.ToLower(sum.DeliveryTime)),
		"",
		fmt.Sprintf("Skip hire     %s", widgets.PriceLabel(m.Currency, sum.SkipPrice)),
	}
	if sum.PermitRequired {
		lines = append(lines, fmt.Sprintf("Road permit   %s", widgets.PriceLabel(m.Currency, sum.PermitFee)))
	}
	lines = append(lines,
		fmt.Sprintf("Total         %s inc VAT", widgets.PriceLabel(m.Currency, sum.Total)),
		"",
	)
	if sel.Confirmed {
		lines = append(lines, "✓ Booking confirmed — reference "+sel.Reference)
	} else {
		lines = append(lines, "Press enter to confirm your booking")
	}

	return widgets.Pane{
		Title:   "Order summary",
		Height:  16,
		Content: strings.Join(lines, "\n"),
		Focused: true,
	}
}
