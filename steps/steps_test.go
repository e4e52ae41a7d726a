package steps

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"skipflow/catalog"
	"skipflow/core"
	"skipflow/internal/service"
)

func keyPress(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func testModel(views ...core.StepView) *core.Model {
	skips := catalog.Build(catalog.DefaultRates())
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	commands := core.NewCommandRegistry(nil)
	m := core.NewModel(skips, views, keys, commands, "£")
	return &m
}

func advanceTo(t *testing.T, m *core.Model, step core.WizardStep) {
	t.Helper()
	for m.Wizard.Current() < step {
		m.Wizard.SetGate(m.Wizard.Current(), true)
		if !m.Wizard.Advance() {
			t.Fatalf("advance stalled at step %d", m.Wizard.Current())
		}
	}
}

func TestPostcodeResolvesServedZone(t *testing.T) {
	locator := service.NewLocator(catalog.DefaultRates())
	step := NewPostcodeStep(locator, "")
	m := testModel(step)

	step.input.SetValue("nr32 1ab")
	step.revalidate(m)

	if !m.Wizard.GateOpen(core.StepPostcode) {
		t.Fatal("gate should open for a served postcode")
	}
	sel := m.Wizard.Selection()
	if sel.Postcode != "NR32 1AB" || sel.Zone != "NR32" {
		t.Fatalf("selection = %q / %q", sel.Postcode, sel.Zone)
	}
}

func TestPostcodeGateClosesWhenEdited(t *testing.T) {
	locator := service.NewLocator(catalog.DefaultRates())
	step := NewPostcodeStep(locator, "NR32")
	m := testModel(step)
	step.revalidate(m)
	if !m.Wizard.GateOpen(core.StepPostcode) {
		t.Fatal("initial value should resolve")
	}

	step.input.SetValue("NR")
	step.revalidate(m)
	if m.Wizard.GateOpen(core.StepPostcode) {
		t.Fatal("gate should close once the value stops resolving")
	}
}

func TestPostcodeGateHintSuggestsNearbyZone(t *testing.T) {
	locator := service.NewLocator(catalog.DefaultRates())
	step := NewPostcodeStep(locator, "")
	m := testModel(step)

	step.input.SetValue("NR34 2XY")
	step.revalidate(m)
	hint := step.GateHint(m)
	if !strings.Contains(hint, "NR32") {
		t.Fatalf("hint should suggest NR32, got %q", hint)
	}

	step.input.SetValue("")
	step.revalidate(m)
	if got := step.GateHint(m); got != "Enter a postcode to continue" {
		t.Fatalf("empty-input hint = %q", got)
	}
}

func TestWasteTypeToggleDrivesGate(t *testing.T) {
	step := NewWasteTypeStep()
	m := testModel(step)
	advanceTo(t, m, core.StepWasteType)

	step.Update(m, keyPress(tea.KeySpace))
	if !m.Wizard.GateOpen(core.StepWasteType) {
		t.Fatal("gate should open after first toggle")
	}
	if !m.Wizard.Selection().HasWasteType("household") {
		t.Fatal("household should be chosen")
	}

	step.Update(m, keyPress(tea.KeySpace))
	if m.Wizard.GateOpen(core.StepWasteType) {
		t.Fatal("gate should close when the last type is untoggled")
	}
}

func TestWasteTypeHeavyDetection(t *testing.T) {
	sel := core.Selection{WasteTypes: []string{"garden"}}
	if HeavyWasteSelected(sel) {
		t.Fatal("garden waste is not heavy")
	}
	sel.WasteTypes = append(sel.WasteTypes, "construction")
	if !HeavyWasteSelected(sel) {
		t.Fatal("construction waste is heavy")
	}
}

func TestSelectSkipInitUsesPreferredSize(t *testing.T) {
	step := NewSelectSkipStep(6)
	m := testModel(step)

	if cmd := step.InitStep(m); cmd != nil {
		t.Fatal("no status expected when the preferred size exists")
	}
	skip, ok := step.Highlighted(m)
	if !ok || skip.Size != 6 {
		t.Fatalf("highlighted = %+v, %v", skip, ok)
	}
}

func TestSelectSkipInitFallsBackToMostPopular(t *testing.T) {
	step := NewSelectSkipStep(5)
	m := testModel(step)

	cmd := step.InitStep(m)
	if cmd == nil {
		t.Fatal("fallback should announce itself")
	}
	msg, ok := cmd().(core.StatusMsg)
	if !ok || !strings.Contains(msg.Text, "most popular") {
		t.Fatalf("status = %#v", msg)
	}
	skip, _ := step.Highlighted(m)
	if skip.Size != 8 {
		t.Fatalf("fallback highlighted size = %d, want 8", skip.Size)
	}
}

func TestSelectSkipChooseSetsSelection(t *testing.T) {
	step := NewSelectSkipStep(6)
	m := testModel(step)
	step.InitStep(m)
	advanceTo(t, m, core.StepSelectSkip)

	step.Update(m, keyPress(tea.KeyRight))
	step.Update(m, keyPress(tea.KeyEnter))

	sel := m.Wizard.Selection()
	if sel.SkipID == 0 || !m.Wizard.GateOpen(core.StepSelectSkip) {
		t.Fatalf("choose should set the skip and open the gate, got id %d", sel.SkipID)
	}
	skip, _ := step.Highlighted(m)
	if skip.ID != sel.SkipID {
		t.Fatal("chosen skip should be frontloaded under the cursor")
	}
}

func TestSelectSkipRefusesUnsuitableForHeavyWaste(t *testing.T) {
	step := NewSelectSkipStep(12) // 12 yard takes no heavy waste
	m := testModel(step)
	step.InitStep(m)
	advanceTo(t, m, core.StepSelectSkip)
	m.Wizard.ToggleWasteType("construction")

	step.Update(m, keyPress(tea.KeyEnter))
	if m.Wizard.GateOpen(core.StepSelectSkip) || m.Wizard.Selection().SkipID != 0 {
		t.Fatal("heavy waste should block an unsuitable skip")
	}
}

func TestPermitRoadPlacementBlockedForLargeSkip(t *testing.T) {
	step := NewPermitCheckStep()
	m := testModel(step)
	advanceTo(t, m, core.StepPermitCheck)
	idx, _ := catalog.IndexBySize(m.Catalog, 12)
	m.Wizard.SetSkipID(m.Catalog[idx].ID)

	step.Update(m, keyPress(tea.KeyRight)) // move to "Public road"
	step.Update(m, keyPress(tea.KeyEnter))
	if m.Wizard.GateOpen(core.StepPermitCheck) {
		t.Fatal("road placement should be refused for a road-banned skip")
	}

	step.Update(m, keyPress(tea.KeyLeft))
	step.Update(m, keyPress(tea.KeyEnter))
	if !m.Wizard.GateOpen(core.StepPermitCheck) {
		t.Fatal("private land should always pass")
	}
	if m.Wizard.Selection().PermitLocation != "private" {
		t.Fatalf("placement = %q", m.Wizard.Selection().PermitLocation)
	}
}

func TestPermitRoadPlacementAllowedForSmallSkip(t *testing.T) {
	step := NewPermitCheckStep()
	m := testModel(step)
	advanceTo(t, m, core.StepPermitCheck)
	idx, _ := catalog.IndexBySize(m.Catalog, 4)
	m.Wizard.SetSkipID(m.Catalog[idx].ID)

	step.Update(m, keyPress(tea.KeyRight))
	step.Update(m, keyPress(tea.KeyEnter))
	if !m.Wizard.GateOpen(core.StepPermitCheck) {
		t.Fatal("road placement should pass for a road-allowed skip")
	}
	if m.Wizard.Selection().PermitLocation != "road" {
		t.Fatalf("placement = %q", m.Wizard.Selection().PermitLocation)
	}
}

func TestChooseDateWindowSkipsSundays(t *testing.T) {
	// 2026-08-29 is a Saturday; one day of lead time lands on a Sunday.
	now := func() time.Time { return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC) }
	step := NewChooseDateStep(1, 5, "Mon 02 Jan", now)

	dates := step.Dates()
	if len(dates) != 5 {
		t.Fatalf("window length = %d, want 5", len(dates))
	}
	if got := dates[0].Day(); got != 31 {
		t.Fatalf("first date day = %d, want 31 (Sunday skipped)", got)
	}
	for _, d := range dates {
		if d.Weekday() == time.Sunday {
			t.Fatalf("Sunday offered: %s", d)
		}
	}
}

func TestChooseDateSelectionOpensGate(t *testing.T) {
	now := func() time.Time { return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC) }
	step := NewChooseDateStep(2, 3, "Mon 02 Jan", now)
	m := testModel(step)
	advanceTo(t, m, core.StepChooseDate)

	step.Update(m, keyPress(tea.KeyRight))
	step.Update(m, keyPress(tea.KeyEnter))

	sel := m.Wizard.Selection()
	if sel.DeliveryDate.IsZero() || !m.Wizard.GateOpen(core.StepChooseDate) {
		t.Fatal("choosing a date should record it and open the gate")
	}
	if !sel.DeliveryDate.Equal(step.Dates()[1]) {
		t.Fatalf("delivery date = %s", sel.DeliveryDate)
	}
}

func TestPaymentConfirmEmitsBookingReference(t *testing.T) {
	step := NewPaymentStep(service.Booker{}, "Mon 02 Jan")
	m := testModel(step)
	advanceTo(t, m, core.StepPayment)

	idx, _ := catalog.IndexBySize(m.Catalog, 6)
	m.Wizard.SetPostcode("NR32 1AB", "NR32")
	m.Wizard.ToggleWasteType("garden")
	m.Wizard.SetSkipID(m.Catalog[idx].ID)
	m.Wizard.SetPermitLocation("private")
	m.Wizard.SetDeliveryDate(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC))

	cmd := step.Update(m, keyPress(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("confirm should produce a command")
	}
	msg, ok := cmd().(core.BookingConfirmedMsg)
	if !ok {
		t.Fatalf("message = %#v", cmd())
	}
	if !strings.HasPrefix(msg.Reference, "SF-") {
		t.Fatalf("reference = %q", msg.Reference)
	}
}

func TestPaymentConfirmRejectsIncompleteBooking(t *testing.T) {
	step := NewPaymentStep(service.Booker{}, "Mon 02 Jan")
	m := testModel(step)
	advanceTo(t, m, core.StepPayment)

	cmd := step.Update(m, keyPress(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected an error status command")
	}
	msg, ok := cmd().(core.StatusMsg)
	if !ok || !msg.IsErr {
		t.Fatalf("message = %#v", cmd())
	}
}
