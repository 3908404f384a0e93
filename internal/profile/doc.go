// Package profile assembles compiled manipulators into a named rule group
// and serializes it to the remapping engine's persisted format.
//
// A Profile is a title plus one or more Rules; each Rule groups the
// manipulators that belong together in the engine's UI. The package also
// validates emitted profiles against an embedded JSON Schema before they
// are written, and writes atomically so a half-written profile never
// replaces a good one.
package profile
