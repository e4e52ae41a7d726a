package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding ties one or more keys to a named action within the wizard
// scopes it may fire in. An empty scope list makes the binding global.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions. Bindings are indexed by
// normalized key, so a press only consults the bindings that share its key;
// scope disambiguates keys bound to different actions per step (enter
// advances on the postcode step but chooses on the tile steps).
type KeyRegistry struct {
	ordered []KeyBinding
	byKey   map[string][]KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{byKey: make(map[string][]KeyBinding)}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.ordered = append(r.ordered, binding)
	for _, k := range binding.Keys {
		nk := normalizeKey(k)
		r.byKey[nk] = append(r.byKey[nk], binding)
	}
}

// ActionFor resolves a key press in a scope to its bound action. When a key
// carries several bindings the first registered one whose scope matches
// wins.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) (string, bool) {
	for _, b := range r.byKey[normalizeKey(msg.String())] {
		if scopeAllows(b.Scopes, scope) {
			return b.Action, true
		}
	}
	return "", false
}

// IsAction reports whether the key press resolves to the named action.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	got, ok := r.ActionFor(msg, scope)
	return ok && got == action
}

// BindingsForScope lists the bindings active in a scope, in registration
// order; the footer renders these as its help line.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.ordered))
	for _, b := range r.ordered {
		if scopeAllows(b.Scopes, scope) {
			out = append(out, b)
		}
	}
	return out
}

// normalizeKey maps a raw key string onto binding-table spelling. The space
// key arrives as " " but is bound as "space".
func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeAllows(scopes []string, scope string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
