package config

// Blueprint is the parsed declarative description of one profile.
type Blueprint struct {
	// Title names the generated profile.
	Title string `toml:"title" yaml:"title"`

	// Device identifies the hardware the rules are restricted to.
	Device DeviceEntry `toml:"device" yaml:"device"`

	// Layers declare the modifier keys that gate layer-scoped buttons.
	Layers []LayerEntry `toml:"layers" yaml:"layers"`

	// Buttons declare the individual mappings.
	Buttons []ButtonEntry `toml:"buttons" yaml:"buttons"`
}

// DeviceEntry identifies the target hardware. Either the id pair is given
// directly, or Name is resolved against the connected devices at
// generation time. An entry with neither means no device restriction.
type DeviceEntry struct {
	Name      string `toml:"name" yaml:"name"`
	VendorID  int    `toml:"vendor_id" yaml:"vendor_id"`
	ProductID int    `toml:"product_id" yaml:"product_id"`
}

// LayerEntry declares one layer key. Behavior defaults to "modifier";
// "dual" layers carry a tap action via the shared action fields.
type LayerEntry struct {
	Variable    string   `toml:"variable" yaml:"variable"`
	Button      string   `toml:"button" yaml:"button"`
	Behavior    string   `toml:"behavior" yaml:"behavior"`
	ThresholdMS int      `toml:"threshold_ms" yaml:"threshold_ms"`
	Shell       string   `toml:"shell" yaml:"shell"`
	Keys        []string `toml:"keys" yaml:"keys"`
	Modifiers   []string `toml:"modifiers" yaml:"modifiers"`
}

// SequenceEntry is one step of a complex action sequence.
type SequenceEntry struct {
	Key        string   `toml:"key" yaml:"key"`
	Modifiers  []string `toml:"modifiers" yaml:"modifiers"`
	Shell      string   `toml:"shell" yaml:"shell"`
	HoldDownMS int      `toml:"hold_down_ms" yaml:"hold_down_ms"`
}

// ButtonEntry declares one button mapping. Behavior defaults to "click".
// The action is one of: shell, sequence, or keys+modifiers.
type ButtonEntry struct {
	ID                      string          `toml:"id" yaml:"id"`
	Chord                   []string        `toml:"chord" yaml:"chord"`
	Behavior                string          `toml:"behavior" yaml:"behavior"`
	Layer                   string          `toml:"layer" yaml:"layer"`
	LayerValue              int             `toml:"layer_value" yaml:"layer_value"`
	App                     string          `toml:"app" yaml:"app"`
	Variable                string          `toml:"variable" yaml:"variable"`
	Shell                   string          `toml:"shell" yaml:"shell"`
	Keys                    []string        `toml:"keys" yaml:"keys"`
	Modifiers               []string        `toml:"modifiers" yaml:"modifiers"`
	Sequence                []SequenceEntry `toml:"sequence" yaml:"sequence"`
	ThresholdMS             int             `toml:"threshold_ms" yaml:"threshold_ms"`
	MandatoryModifiers      []string        `toml:"mandatory_modifiers" yaml:"mandatory_modifiers"`
	OptionalAny             bool            `toml:"optional_any" yaml:"optional_any"`
	SimultaneousThresholdMS int             `toml:"simultaneous_threshold_ms" yaml:"simultaneous_threshold_ms"`
}

// layerValue returns the required layer variable value, defaulting to the
// conventional "layer active" value.
func (e ButtonEntry) layerValue() int {
	if e.LayerValue == 0 {
		return 1
	}
	return e.LayerValue
}
