// Package catalog holds the skip rate catalog: raw rate records, the pure
// decoration pipeline that derives display pricing and metadata from them,
// and the lookup helpers the selection UI reads from.
//
// Allowed here:
// - rate/skip types, pricing derivation, metadata tables and synthesis
// - pure queries over the built catalog
//
// Not allowed here:
// - key handling, rendering, or any wizard state
package catalog
