// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - the booking wizard state machine shared across steps
// - header/status/footer layout policy
//
// Not allowed here:
// - concrete step/modal rendering implementations
// - low-level widget rendering primitives
package core
