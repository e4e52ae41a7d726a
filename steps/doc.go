// Package steps contains the wizard step implementations: per-step cursor
// state, gate upkeep, and body composition.
//
// Allowed here:
// - step-specific option handling and layout trees
//
// Not allowed here:
// - shared app routing logic (core) or low-level drawing primitives (widgets)
package steps
