// Package karabiner compiles button blueprints into Karabiner-Elements
// complex-modification manipulators.
//
// The package is the rule-compilation core of MouseMapper. A ButtonConfig
// describes one physical input (a mouse button, a key, or a chord of
// several inputs) together with its interaction behavior; Compile turns it
// into a single Manipulator ready for profile assembly.
//
// # Behaviors
//
// Six behaviors are supported, dispatched over a closed variant set:
//
//   - Click: press emits the tap action.
//   - Modifier: hold sets a layer variable; pointing-button triggers keep
//     their native click as a tap fallback.
//   - Dual: tap emits the tap action, hold sets a layer variable.
//   - Virtual: converts an ordinary key into a variable-backed modifier.
//   - Simultaneous: a chord of inputs pressed together triggers the action.
//   - Toggle: reserved; compilation always fails until stateful toggles
//     are supported by the engine profile.
//
// # Identifier classification
//
// Karabiner distinguishes pointing buttons from key codes in both triggers
// and outputs. Any identifier whose textual form starts with "button"
// (button1, button3, ...) is a pointing button; everything else is a key
// code. The classifier is applied uniformly: single triggers, chord
// members, and serialized outputs.
//
// # Purity
//
// Compilation is a pure, synchronous transformation. A compile call either
// returns a fully formed manipulator or an error; there is no partial
// result. Independent configs may be compiled concurrently. Condition
// injection is an ordered append on a single manipulator and must not be
// invoked concurrently on the same manipulator.
package karabiner
