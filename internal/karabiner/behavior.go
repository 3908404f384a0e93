package karabiner

// ButtonBehavior is the interaction archetype for an input trigger.
// The set is closed; new behaviors get their own compiler registered in
// the compiler table rather than widening an existing branch.
type ButtonBehavior uint8

const (
	// BehaviorClick is a standard press emitting the tap action.
	BehaviorClick ButtonBehavior = iota

	// BehaviorModifier turns the input into a pure layer modifier.
	BehaviorModifier

	// BehaviorDual taps for the action and holds for the layer variable.
	BehaviorDual

	// BehaviorVirtual converts an ordinary key into a layer modifier.
	BehaviorVirtual

	// BehaviorSimultaneous triggers on a chord of inputs pressed together.
	BehaviorSimultaneous

	// BehaviorToggle is reserved for stateful layer toggling.
	// Compilation always fails: true toggle semantics need state carried
	// across invocations, which this stateless compiler cannot express.
	BehaviorToggle
)

// String returns the behavior name as used in blueprint files.
func (b ButtonBehavior) String() string {
	switch b {
	case BehaviorClick:
		return "click"
	case BehaviorModifier:
		return "modifier"
	case BehaviorDual:
		return "dual"
	case BehaviorVirtual:
		return "virtual"
	case BehaviorSimultaneous:
		return "simultaneous"
	case BehaviorToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// behaviorNameMap maps blueprint behavior names to ButtonBehavior values.
var behaviorNameMap = map[string]ButtonBehavior{
	"click":        BehaviorClick,
	"modifier":     BehaviorModifier,
	"dual":         BehaviorDual,
	"virtual":      BehaviorVirtual,
	"simultaneous": BehaviorSimultaneous,
	"toggle":       BehaviorToggle,
}

// BehaviorFromName returns the ButtonBehavior for a blueprint name.
// The second return value reports whether the name is recognized.
func BehaviorFromName(name string) (ButtonBehavior, bool) {
	b, ok := behaviorNameMap[name]
	return b, ok
}

// RequiresTapAction reports whether the behavior needs a tap action to
// compile.
func (b ButtonBehavior) RequiresTapAction() bool {
	return b == BehaviorClick || b == BehaviorDual
}

// RequiresLayerVariable reports whether the behavior needs a layer
// variable to compile.
func (b ButtonBehavior) RequiresLayerVariable() bool {
	return b == BehaviorModifier || b == BehaviorDual || b == BehaviorVirtual
}
