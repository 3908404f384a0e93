package karabiner

import "strings"

// Default timing windows, in milliseconds.
const (
	// DefaultThresholdMS is the tap/hold discrimination window.
	DefaultThresholdMS = 200

	// DefaultSimultaneousThresholdMS is the chord detection window.
	DefaultSimultaneousThresholdMS = 50
)

// ButtonConfig is the blueprint for one compiled rule. It is an immutable
// value type: construct it once, pass it to a single Compile call.
//
// Invariants enforced at compile time: Chord is populated iff Behavior is
// BehaviorSimultaneous; TapAction is present iff the behavior requires it;
// LayerVariable is present iff the behavior requires it.
type ButtonConfig struct {
	// ButtonID is the single trigger identifier. Empty for chords.
	ButtonID string

	// Chord lists the trigger identifiers of a simultaneous rule.
	Chord []string

	// Behavior is the interaction archetype.
	Behavior ButtonBehavior

	// TapAction is the output emitted on tap. Required for Click and
	// Dual, optional for Virtual and Simultaneous.
	TapAction *Action

	// LayerVariable names the engine variable set while the trigger is
	// held. Required for Modifier, Dual, and Virtual.
	LayerVariable string

	// ThresholdMS is the tap/hold discrimination window. Zero means
	// DefaultThresholdMS.
	ThresholdMS int

	// MandatoryModifiers are hardware modifiers that must be held for
	// the rule to match.
	MandatoryModifiers []string

	// SimultaneousThresholdMS is the chord detection window. Zero means
	// DefaultSimultaneousThresholdMS.
	SimultaneousThresholdMS int
}

// ID returns the identifier used in error messages: the single trigger,
// or the chord members joined with "+".
func (c ButtonConfig) ID() string {
	if len(c.Chord) > 0 {
		return strings.Join(c.Chord, "+")
	}
	return c.ButtonID
}

// threshold returns the tap/hold window with the default applied.
func (c ButtonConfig) threshold() int {
	if c.ThresholdMS == 0 {
		return DefaultThresholdMS
	}
	return c.ThresholdMS
}

// simultaneousThreshold returns the chord window with the default applied.
func (c ButtonConfig) simultaneousThreshold() int {
	if c.SimultaneousThresholdMS == 0 {
		return DefaultSimultaneousThresholdMS
	}
	return c.SimultaneousThresholdMS
}

// validate checks the config invariants shared by all behaviors.
func (c ButtonConfig) validate() error {
	if c.Behavior == BehaviorSimultaneous {
		if len(c.Chord) == 0 {
			return compileErr(c, ErrChordRequired)
		}
	} else {
		if len(c.Chord) > 0 {
			return compileErr(c, ErrChordNotAllowed)
		}
		if c.ButtonID == "" {
			return compileErr(c, ErrNoButtonID)
		}
	}
	if c.ThresholdMS < 0 || c.SimultaneousThresholdMS < 0 {
		return compileErr(c, ErrInvalidThreshold)
	}
	if c.Behavior.RequiresTapAction() && c.TapAction == nil {
		return compileErr(c, ErrMissingTapAction)
	}
	if c.Behavior.RequiresLayerVariable() && c.LayerVariable == "" {
		return compileErr(c, ErrMissingLayerVariable)
	}
	return nil
}
