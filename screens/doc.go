// Package screens contains the overlay flows rendered on top of the wizard.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (command palette, skip detail)
// - modal-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
