package karabiner

// DeviceID identifies the hardware a rule is restricted to. The zero
// value, or a value with either id zero, means no device restriction.
type DeviceID struct {
	VendorID  int
	ProductID int
}

// restricts reports whether the id pair names concrete hardware.
func (d DeviceID) restricts() bool {
	return d.VendorID != 0 && d.ProductID != 0
}

// compileFunc compiles a validated config into a manipulator.
type compileFunc func(cfg ButtonConfig, dev DeviceID) (*Manipulator, error)

// compilers routes each behavior to its compiler. New behaviors register
// here with their own compiler.
var compilers = map[ButtonBehavior]compileFunc{
	BehaviorClick:        compileClick,
	BehaviorModifier:     compileModifier,
	BehaviorDual:         compileDual,
	BehaviorVirtual:      compileVirtual,
	BehaviorSimultaneous: compileSimultaneous,
	BehaviorToggle:       compileToggle,
}

// Compile turns a button blueprint into a manipulator, optionally
// restricted to the given device. It either returns a fully formed
// manipulator or an error naming the offending button and field.
func Compile(cfg ButtonConfig, dev DeviceID) (*Manipulator, error) {
	fn, ok := compilers[cfg.Behavior]
	if !ok {
		return nil, compileErr(cfg, ErrUnknownBehavior)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return fn(cfg, dev)
}

// newBaseManipulator builds the trigger and device restriction shared by
// every behavior.
func newBaseManipulator(cfg ButtonConfig, dev DeviceID) *Manipulator {
	m := &Manipulator{
		Type: "basic",
		From: buildFromBlock(cfg),
	}
	if dev.restricts() {
		m.AddCondition(NewDeviceCondition(dev.VendorID, dev.ProductID))
	}
	return m
}

// compileClick emits the tap action on press.
func compileClick(cfg ButtonConfig, dev DeviceID) (*Manipulator, error) {
	m := newBaseManipulator(cfg, dev)
	m.To = cfg.TapAction.Events()
	return m, nil
}

// compileModifier sets the layer variable while held. A pointing-button
// trigger keeps its native click as a to_if_alone fallback so a brief tap
// still clicks; a key trigger gets no fallback, since a key used as a
// pure modifier should not leak its tap.
func compileModifier(cfg ButtonConfig, dev DeviceID) (*Manipulator, error) {
	m := newBaseManipulator(cfg, dev)
	m.To, m.ToAfterKeyUp = setVariableEvents(cfg.LayerVariable)

	if IsPointingButton(cfg.ButtonID) {
		m.ToIfAlone = []ToEvent{{PointingButton: cfg.ButtonID}}
		m.Parameters = &Parameters{ToIfAloneTimeoutMilliseconds: cfg.threshold()}
	}
	return m, nil
}

// compileDual sets the layer variable while held and emits the tap action
// if released within the threshold.
func compileDual(cfg ButtonConfig, dev DeviceID) (*Manipulator, error) {
	m := newBaseManipulator(cfg, dev)
	m.To, m.ToAfterKeyUp = setVariableEvents(cfg.LayerVariable)
	m.ToIfAlone = cfg.TapAction.Events()
	m.Parameters = &Parameters{ToIfAloneTimeoutMilliseconds: cfg.threshold()}
	return m, nil
}

// compileVirtual converts an ordinary key into a variable-backed modifier.
// The transition structure matches Dual; the alone-tap action is optional.
func compileVirtual(cfg ButtonConfig, dev DeviceID) (*Manipulator, error) {
	m := newBaseManipulator(cfg, dev)
	m.To, m.ToAfterKeyUp = setVariableEvents(cfg.LayerVariable)
	if cfg.TapAction != nil {
		m.ToIfAlone = cfg.TapAction.Events()
	}
	m.Parameters = &Parameters{ToIfAloneTimeoutMilliseconds: cfg.threshold()}
	return m, nil
}

// compileSimultaneous emits like Click; chord detection is already encoded
// in the from block. The tap action is optional for chords that only gate
// other rules.
func compileSimultaneous(cfg ButtonConfig, dev DeviceID) (*Manipulator, error) {
	m := newBaseManipulator(cfg, dev)
	if cfg.TapAction != nil {
		m.To = cfg.TapAction.Events()
	}
	m.Parameters = &Parameters{SimultaneousThresholdMilliseconds: cfg.simultaneousThreshold()}
	return m, nil
}

// compileToggle always fails. Emitting an incomplete manipulator would be
// worse than refusing: the engine would install a rule that silently does
// nothing.
func compileToggle(cfg ButtonConfig, _ DeviceID) (*Manipulator, error) {
	return nil, compileErr(cfg, ErrToggleNotImplemented)
}
