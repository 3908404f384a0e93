// Package config loads MouseMapper blueprint files and builds the
// ordered manipulator plan from them.
//
// A blueprint declares the target device, the layer keys, and the button
// mappings for one profile:
//
//	title = "Naga HyperSpeed"
//
//	[device]
//	vendor_id = 1678
//	product_id = 181
//
//	[[layers]]
//	variable = "naga_hyper_mode"
//	button = "button3"
//
//	[[buttons]]
//	id = "1"
//	layer = "naga_hyper_mode"
//	keys = ["1"]
//	modifiers = ["left_option", "left_shift"]
//	optional_any = true
//
//	[[buttons]]
//	id = "0"
//	app = "^com\\.google\\.Chrome$"
//	keys = ["f"]
//	modifiers = ["left_command"]
//
// TOML is the primary format; YAML blueprints with the same shape are
// picked by file extension. Lua blueprints are handled by the script
// package.
//
// The plan builder compiles every entry and orders the result the way the
// engine needs it: the engine applies the first matching manipulator, so
// layer definitions come first, then layer+app rules, layer rules, app
// rules, and finally global defaults.
package config
