package core

import (
	"slices"
	"time"
)

type WizardStep int

const (
	StepPostcode WizardStep = iota + 1
	StepWasteType
	StepSelectSkip
	StepPermitCheck
	StepChooseDate
	StepPayment
)

const TotalSteps = 6

func (s WizardStep) Title() string {
	switch s {
	case StepPostcode:
		return "Postcode"
	case StepWasteType:
		return "Waste Type"
	case StepSelectSkip:
		return "Select Skip"
	case StepPermitCheck:
		return "Permit Check"
	case StepChooseDate:
		return "Choose Date"
	case StepPayment:
		return "Payment"
	}
	return "Unknown"
}

func (s WizardStep) Valid() bool {
	return s >= StepPostcode && s <= StepPayment
}

// Selection carries every step-local slot in one inspectable value. Zero
// values mean "not chosen yet"; retreating never clears a slot.
type Selection struct {
	Postcode       string
	Zone           string
	WasteTypes     []string
	SkipID         int
	PermitLocation string
	DeliveryDate   time.Time
	Confirmed      bool
	Reference      string
}

func (s Selection) HasWasteType(id string) bool {
	return slices.Contains(s.WasteTypes, id)
}

// Wizard is the linear six-step booking machine. Transitions are total:
// out-of-range moves and closed gates are no-ops, never errors.
type Wizard struct {
	current   WizardStep
	gates     [TotalSteps + 1]bool
	selection Selection
}

func NewWizard() *Wizard {
	return &Wizard{current: StepPostcode}
}

func (w *Wizard) Current() WizardStep { return w.current }
func (w *Wizard) Total() int          { return TotalSteps }

// Done reports whether a step has already been passed.
func (w *Wizard) Done(step WizardStep) bool {
	return step < w.current
}

func (w *Wizard) SetGate(step WizardStep, open bool) {
	if !step.Valid() {
		return
	}
	w.gates[step] = open
}

func (w *Wizard) GateOpen(step WizardStep) bool {
	if !step.Valid() {
		return false
	}
	return w.gates[step]
}

func (w *Wizard) CanAdvance() bool {
	return w.current < StepPayment && w.gates[w.current]
}

// Advance moves forward one step when allowed and reports whether it moved.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	w.current++
	return true
}

// Retreat moves back one step. The gate of the step being left is not
// re-validated and its selection slot is preserved.
func (w *Wizard) Retreat() bool {
	if w.current <= StepPostcode {
		return false
	}
	w.current--
	return true
}

// Reachable reports whether a step can be jumped to directly: anything at
// or behind the current step, or ahead of it with every intervening gate
// open.
func (w *Wizard) Reachable(step WizardStep) bool {
	if !step.Valid() {
		return false
	}
	if step <= w.current {
		return true
	}
	for s := w.current; s < step; s++ {
		if !w.gates[s] {
			return false
		}
	}
	return true
}

// JumpTo moves directly to a reachable step and reports whether it moved.
func (w *Wizard) JumpTo(step WizardStep) bool {
	if !w.Reachable(step) {
		return false
	}
	w.current = step
	return true
}

func (w *Wizard) Selection() Selection {
	return w.selection
}

func (w *Wizard) SetPostcode(postcode, zone string) {
	w.selection.Postcode = postcode
	w.selection.Zone = zone
}

func (w *Wizard) ToggleWasteType(id string) {
	if i := slices.Index(w.selection.WasteTypes, id); i >= 0 {
		w.selection.WasteTypes = slices.Delete(w.selection.WasteTypes, i, i+1)
		return
	}
	w.selection.WasteTypes = append(w.selection.WasteTypes, id)
}

func (w *Wizard) SetSkipID(id int)               { w.selection.SkipID = id }
func (w *Wizard) SetPermitLocation(loc string)   { w.selection.PermitLocation = loc }
func (w *Wizard) SetDeliveryDate(date time.Time) { w.selection.DeliveryDate = date }

func (w *Wizard) SetConfirmed(reference string) {
	w.selection.Confirmed = true
	w.selection.Reference = reference
}

// Reset returns the machine to step one with an empty selection.
func (w *Wizard) Reset() {
	*w = Wizard{current: StepPostcode}
}

// FrontloadOrder is the display order for the skip tab strip: the selected
// canonical index first, the rest in canonical order. The canonical order
// is always the basis, so repeated selections cannot compound drift.
func FrontloadOrder(n, selected int) []int {
	if n <= 0 {
		return nil
	}
	if selected < 0 || selected >= n {
		selected = 0
	}
	out := make([]int, 0, n)
	out = append(out, selected)
	for i := 0; i < n; i++ {
		if i != selected {
			out = append(out, i)
		}
	}
	return out
}
