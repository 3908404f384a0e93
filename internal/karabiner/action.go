package karabiner

// macroKeyHoldMS is the fixed inter-key delay applied to every descriptor
// of a multi-key legacy macro. Without it the engine can drop keys during
// fast playback.
const macroKeyHoldMS = 20

// ActionKind identifies the active payload shape of an Action.
type ActionKind uint8

const (
	// ActionShell runs a raw shell command.
	ActionShell ActionKind = iota

	// ActionSequence emits an ordered sequence of ActionEvents.
	ActionSequence

	// ActionKeys emits a key code list with shared modifiers (legacy
	// simple mode).
	ActionKeys
)

// String returns a human-readable name for the kind.
func (k ActionKind) String() string {
	switch k {
	case ActionShell:
		return "shell"
	case ActionSequence:
		return "sequence"
	case ActionKeys:
		return "keys"
	default:
		return "unknown"
	}
}

// ActionEvent is one atomic effect within an action sequence.
type ActionEvent struct {
	// KeyCode is the identifier to emit. Classified on serialization.
	KeyCode string

	// Modifiers apply to this event only.
	Modifiers []string

	// ShellCommand, if set, replaces the key emission for this event.
	ShellCommand string

	// HoldDownMilliseconds keeps the key pressed for the given duration.
	// Zero means no explicit hold.
	HoldDownMilliseconds int
}

// Action is an output effect with exactly one active payload shape,
// enforced at construction. The shape precedence of the original
// all-optional record (shell > events > keys) is preserved structurally:
// each constructor fixes the kind, so ambiguous multi-shape states cannot
// be built.
type Action struct {
	kind         ActionKind
	shellCommand string
	events       []ActionEvent
	keyCodes     []string
	modifiers    []string
}

// ShellAction returns an Action that runs a shell command.
func ShellAction(command string) Action {
	return Action{kind: ActionShell, shellCommand: command}
}

// SequenceAction returns an Action emitting the events in order.
func SequenceAction(events ...ActionEvent) Action {
	return Action{kind: ActionSequence, events: events}
}

// KeyAction returns an Action emitting a single key with modifiers.
func KeyAction(keyCode string, modifiers ...string) Action {
	return Action{kind: ActionKeys, keyCodes: []string{keyCode}, modifiers: modifiers}
}

// KeysAction returns an Action emitting a key list with the modifiers
// applied to every element.
func KeysAction(keyCodes []string, modifiers ...string) Action {
	return Action{kind: ActionKeys, keyCodes: keyCodes, modifiers: modifiers}
}

// Kind returns the active payload shape.
func (a Action) Kind() ActionKind {
	return a.kind
}

// IsZero reports whether the action carries no payload at all.
func (a Action) IsZero() bool {
	return a.shellCommand == "" && len(a.events) == 0 && len(a.keyCodes) == 0
}

// Events serializes the action into an ordered list of output descriptors.
// Output order is always input order; no reordering, deduplication, or
// merging occurs.
func (a Action) Events() []ToEvent {
	switch a.kind {
	case ActionShell:
		return []ToEvent{{ShellCommand: a.shellCommand}}

	case ActionSequence:
		out := make([]ToEvent, 0, len(a.events))
		for _, ev := range a.events {
			if ev.ShellCommand != "" {
				out = append(out, ToEvent{ShellCommand: ev.ShellCommand})
				continue
			}
			to := classifyOutput(ev.KeyCode)
			if len(ev.Modifiers) > 0 {
				to.Modifiers = append([]string(nil), ev.Modifiers...)
			}
			if ev.HoldDownMilliseconds > 0 {
				to.HoldDownMilliseconds = ev.HoldDownMilliseconds
			}
			out = append(out, to)
		}
		return out

	default: // ActionKeys
		out := make([]ToEvent, 0, len(a.keyCodes))
		for _, k := range a.keyCodes {
			to := classifyOutput(k)
			if len(a.modifiers) > 0 {
				to.Modifiers = append([]string(nil), a.modifiers...)
			}
			if len(a.keyCodes) > 1 {
				to.HoldDownMilliseconds = macroKeyHoldMS
			}
			out = append(out, to)
		}
		return out
	}
}
