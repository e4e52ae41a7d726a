// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, cards,
//   popup overlay compositor)
//
// Not allowed here:
// - key handling, wizard state transitions, scope logic, or step policy
package widgets
