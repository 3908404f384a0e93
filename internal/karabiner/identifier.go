package karabiner

import "strings"

// pointingButtonPrefix is the literal prefix that marks an identifier as a
// pointing button. The Karabiner schema hinges on this binary choice, so
// the prefix test is the single source of truth for classification.
const pointingButtonPrefix = "button"

// IsPointingButton reports whether the identifier names a pointing button
// (button1, button2, ...) rather than a key code.
func IsPointingButton(id string) bool {
	return strings.HasPrefix(id, pointingButtonPrefix)
}

// InputKey is a single classified trigger input. Exactly one field is set.
type InputKey struct {
	KeyCode        string `json:"key_code,omitempty"`
	PointingButton string `json:"pointing_button,omitempty"`
}

// ClassifyInput classifies a trigger identifier into an InputKey.
func ClassifyInput(id string) InputKey {
	if IsPointingButton(id) {
		return InputKey{PointingButton: id}
	}
	return InputKey{KeyCode: id}
}

// classifyOutput classifies an output identifier into a ToEvent carrying
// either a pointing_button or a key_code.
func classifyOutput(id string) ToEvent {
	if IsPointingButton(id) {
		return ToEvent{PointingButton: id}
	}
	return ToEvent{KeyCode: id}
}
