package karabiner

// Manipulator is one compiled rule consumed by the remapping engine:
// trigger, conditions, and output slots. Field order mirrors the engine's
// documented record shape.
type Manipulator struct {
	Type         string      `json:"type"`
	From         FromBlock   `json:"from"`
	To           []ToEvent   `json:"to,omitempty"`
	ToAfterKeyUp []ToEvent   `json:"to_after_key_up,omitempty"`
	ToIfAlone    []ToEvent   `json:"to_if_alone,omitempty"`
	Conditions   []Condition `json:"conditions,omitempty"`
	Parameters   *Parameters `json:"parameters,omitempty"`
}

// FromBlock is the trigger specification of a manipulator. For a single
// trigger exactly one of KeyCode/PointingButton is set; for a chord the
// Simultaneous list carries the classified members.
type FromBlock struct {
	KeyCode             string               `json:"key_code,omitempty"`
	PointingButton      string               `json:"pointing_button,omitempty"`
	Simultaneous        []InputKey           `json:"simultaneous,omitempty"`
	SimultaneousOptions *SimultaneousOptions `json:"simultaneous_options,omitempty"`
	Modifiers           *FromModifiers       `json:"modifiers,omitempty"`
}

// SimultaneousOptions controls chord detection. The values are fixed
// policy, not configurable: chords are order-insensitive and must be
// detected with uninterrupted key-down.
type SimultaneousOptions struct {
	KeyDownOrder                 string `json:"key_down_order"`
	DetectKeyDownUninterruptedly bool   `json:"detect_key_down_uninterruptedly"`
}

// FromModifiers restricts which hardware modifiers may accompany the
// trigger.
type FromModifiers struct {
	Mandatory []string `json:"mandatory,omitempty"`
	Optional  []string `json:"optional,omitempty"`
}

// ToEvent is one output descriptor in a to/to_after_key_up/to_if_alone
// list.
type ToEvent struct {
	KeyCode              string       `json:"key_code,omitempty"`
	PointingButton       string       `json:"pointing_button,omitempty"`
	Modifiers            []string     `json:"modifiers,omitempty"`
	ShellCommand         string       `json:"shell_command,omitempty"`
	HoldDownMilliseconds int          `json:"hold_down_milliseconds,omitempty"`
	SetVariable          *SetVariable `json:"set_variable,omitempty"`
}

// SetVariable assigns a value to a named engine variable. Value zero is
// meaningful (layer off) and always serialized.
type SetVariable struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Parameters carries the engine timing parameters a manipulator opts into.
type Parameters struct {
	ToIfAloneTimeoutMilliseconds      int `json:"basic.to_if_alone_timeout_milliseconds,omitempty"`
	SimultaneousThresholdMilliseconds int `json:"basic.simultaneous_threshold_milliseconds,omitempty"`
}

// AllowAnyModifiers marks the trigger as matching regardless of which
// modifiers are held. Layer rules use this so a chorded hyper key does not
// mask its own mappings.
func (m *Manipulator) AllowAnyModifiers() {
	if m.From.Modifiers == nil {
		m.From.Modifiers = &FromModifiers{}
	}
	m.From.Modifiers.Optional = []string{"any"}
}

// setVariableEvents returns single-event output lists assigning the layer
// variable on press and clearing it on release.
func setVariableEvents(name string) (press, release []ToEvent) {
	press = []ToEvent{{SetVariable: &SetVariable{Name: name, Value: 1}}}
	release = []ToEvent{{SetVariable: &SetVariable{Name: name, Value: 0}}}
	return press, release
}
