package karabiner

import (
	"errors"
	"fmt"
)

// Errors returned by rule compilation. All are configuration errors:
// synchronous, fatal to the compile call, never transient.
var (
	// ErrMissingTapAction indicates a behavior that needs a tap action
	// was configured without one.
	ErrMissingTapAction = errors.New("missing tap_action")

	// ErrMissingLayerVariable indicates a behavior that needs a layer
	// variable was configured without one.
	ErrMissingLayerVariable = errors.New("missing layer_variable")

	// ErrChordRequired indicates simultaneous behavior was configured
	// with a single identifier.
	ErrChordRequired = errors.New("requires a list of button identifiers")

	// ErrChordNotAllowed indicates a chord list on a non-simultaneous
	// behavior.
	ErrChordNotAllowed = errors.New("chord is only valid for simultaneous behavior")

	// ErrNoButtonID indicates a config with no trigger identifier.
	ErrNoButtonID = errors.New("missing button identifier")

	// ErrInvalidThreshold indicates a non-positive tap/hold threshold.
	ErrInvalidThreshold = errors.New("threshold must be a positive integer")

	// ErrToggleNotImplemented indicates toggle behavior, which needs
	// state across invocations and is not supported by this compiler.
	ErrToggleNotImplemented = errors.New("toggle behavior is not implemented")

	// ErrUnknownBehavior indicates a behavior with no registered compiler.
	ErrUnknownBehavior = errors.New("unknown button behavior")
)

// CompileError wraps a compilation failure with the offending button
// identifier and behavior.
type CompileError struct {
	// ButtonID names the button (or chord) that failed to compile.
	ButtonID string
	// Behavior is the configured behavior.
	Behavior ButtonBehavior
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("button %q (%s): %v", e.ButtonID, e.Behavior, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// compileErr wraps err with the config's identity.
func compileErr(cfg ButtonConfig, err error) error {
	return &CompileError{ButtonID: cfg.ID(), Behavior: cfg.Behavior, Err: err}
}
