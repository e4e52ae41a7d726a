package core

const (
	ScopePostcode = "step:postcode"
	ScopeWaste    = "step:waste"
	ScopeSkip     = "step:skip"
	ScopePermit   = "step:permit"
	ScopeDate     = "step:date"
	ScopePayment  = "step:payment"
)

// tileScopes are the steps without free-text entry; single-letter shortcuts
// are only safe there.
var tileScopes = []string{ScopeWaste, ScopeSkip, ScopePermit, ScopeDate, ScopePayment}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: tileScopes},
		{Keys: []string{"enter"}, Action: "next-step", Description: "continue", Scopes: []string{ScopePostcode}},
		{Keys: []string{"n"}, Action: "next-step", Description: "continue", Scopes: tileScopes},
		{Keys: []string{"b"}, Action: "back-step", Description: "back", Scopes: tileScopes},
		{Keys: []string{"esc"}, Action: "back-step", Description: "back", Scopes: []string{ScopePostcode, ScopeWaste, ScopeSkip, ScopePermit, ScopeDate, ScopePayment}},
		{Keys: []string{"left"}, Action: "option-prev", Description: "prev option", Scopes: tileScopes},
		{Keys: []string{"right"}, Action: "option-next", Description: "next option", Scopes: tileScopes},
		{Keys: []string{"space"}, Action: "option-toggle", Description: "toggle", Scopes: []string{ScopeWaste}},
		{Keys: []string{"enter"}, Action: "option-choose", Description: "choose", Scopes: []string{ScopeWaste, ScopeSkip, ScopePermit, ScopeDate}},
		{Keys: []string{"enter"}, Action: "confirm-booking", Description: "confirm booking", Scopes: []string{ScopePayment}},
		{Keys: []string{"i"}, Action: "open-skip-detail", Description: "skip details", Scopes: []string{ScopeSkip}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:command", "screen:detail"}},
	}
}

// DefaultStepScope maps a wizard step to its key scope.
func DefaultStepScope(step WizardStep) string {
	switch step {
	case StepPostcode:
		return ScopePostcode
	case StepWasteType:
		return ScopeWaste
	case StepSelectSkip:
		return ScopeSkip
	case StepPermitCheck:
		return ScopePermit
	case StepChooseDate:
		return ScopeDate
	case StepPayment:
		return ScopePayment
	}
	return "app"
}
