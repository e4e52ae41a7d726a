package core

import (
	"testing"
	"time"
)

func TestWizardStartsAtPostcode(t *testing.T) {
	w := NewWizard()
	if w.Current() != StepPostcode {
		t.Fatalf("initial step = %d, want %d", w.Current(), StepPostcode)
	}
}

func TestWizardAdvanceBlockedByClosedGate(t *testing.T) {
	w := NewWizard()
	if w.Advance() {
		t.Fatalf("advance should be blocked while gate is closed")
	}
	if w.Current() != StepPostcode {
		t.Fatalf("step moved despite closed gate")
	}
	w.SetGate(StepPostcode, true)
	if !w.Advance() {
		t.Fatalf("advance should succeed once gate is open")
	}
	if w.Current() != StepWasteType {
		t.Fatalf("step = %d, want %d", w.Current(), StepWasteType)
	}
}

func TestWizardRetreatAtFirstStepIsNoOp(t *testing.T) {
	w := NewWizard()
	if w.Retreat() {
		t.Fatalf("retreat from step one should be a no-op")
	}
	if w.Current() != StepPostcode {
		t.Fatalf("step = %d, want %d", w.Current(), StepPostcode)
	}
}

func TestWizardAdvanceAtLastStepIsNoOp(t *testing.T) {
	w := NewWizard()
	for s := StepPostcode; s <= StepPayment; s++ {
		w.SetGate(s, true)
	}
	for w.Current() != StepPayment {
		if !w.Advance() {
			t.Fatalf("advance stalled at step %d", w.Current())
		}
	}
	if w.Advance() {
		t.Fatalf("advance past payment should be a no-op")
	}
	if w.Current() != StepPayment {
		t.Fatalf("step = %d, want %d", w.Current(), StepPayment)
	}
}

func TestWizardAdvanceRetreatRoundTrip(t *testing.T) {
	w := NewWizard()
	w.SetGate(StepPostcode, true)
	w.SetGate(StepWasteType, true)
	w.SetGate(StepSelectSkip, true)
	w.Advance()
	w.Advance()
	if w.Current() != StepSelectSkip {
		t.Fatalf("setup: step = %d", w.Current())
	}
	w.Advance()
	w.Retreat()
	if w.Current() != StepSelectSkip {
		t.Fatalf("advance then retreat should restore step, got %d", w.Current())
	}
}

func TestWizardRetreatPreservesSelection(t *testing.T) {
	w := NewWizard()
	w.SetGate(StepPostcode, true)
	w.SetPostcode("NR32 1AB", "NR32")
	w.Advance()
	w.ToggleWasteType("garden")
	w.Retreat()
	sel := w.Selection()
	if !sel.HasWasteType("garden") {
		t.Fatalf("retreat must not clear step-local selection")
	}
	if sel.Postcode != "NR32 1AB" || sel.Zone != "NR32" {
		t.Fatalf("postcode slot lost: %+v", sel)
	}
}

func TestWizardToggleWasteType(t *testing.T) {
	w := NewWizard()
	w.ToggleWasteType("garden")
	w.ToggleWasteType("household")
	w.ToggleWasteType("garden")
	sel := w.Selection()
	if sel.HasWasteType("garden") {
		t.Fatalf("second toggle should remove the waste type")
	}
	if !sel.HasWasteType("household") {
		t.Fatalf("household should remain selected")
	}
}

func TestWizardReachableRespectsGates(t *testing.T) {
	w := NewWizard()
	w.SetGate(StepPostcode, true)
	w.SetGate(StepWasteType, true)
	if !w.Reachable(StepSelectSkip) {
		t.Fatalf("select-skip should be reachable with both gates open")
	}
	if w.Reachable(StepPermitCheck) {
		t.Fatalf("permit check should be blocked by the closed select-skip gate")
	}
	if !w.JumpTo(StepSelectSkip) {
		t.Fatalf("jump to reachable step should succeed")
	}
	if !w.Reachable(StepWasteType) {
		t.Fatalf("earlier steps are always reachable")
	}
}

func TestWizardReset(t *testing.T) {
	w := NewWizard()
	w.SetGate(StepPostcode, true)
	w.SetPostcode("NR32 1AB", "NR32")
	w.Advance()
	w.SetDeliveryDate(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
	w.Reset()
	if w.Current() != StepPostcode {
		t.Fatalf("reset should return to step one")
	}
	sel := w.Selection()
	if sel.Postcode != "" || len(sel.WasteTypes) != 0 || sel.SkipID != 0 || !sel.DeliveryDate.IsZero() {
		t.Fatalf("reset should clear the selection: %+v", sel)
	}
}

func TestFrontloadOrderUsesCanonicalBase(t *testing.T) {
	// Selecting B then A must equal selecting A once from the original
	// order; the reorder base is always the canonical list.
	_ = FrontloadOrder(4, 1) // select B first
	afterA := FrontloadOrder(4, 0)
	direct := FrontloadOrder(4, 0)
	for i := range direct {
		if afterA[i] != direct[i] {
			t.Fatalf("reorder drift at %d: %v vs %v", i, afterA, direct)
		}
	}
	got := FrontloadOrder(4, 2)
	want := []int{2, 0, 1, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestFrontloadOrderClampsSelection(t *testing.T) {
	got := FrontloadOrder(3, 9)
	want := []int{0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if FrontloadOrder(0, 0) != nil {
		t.Fatalf("empty strip should yield nil order")
	}
}
