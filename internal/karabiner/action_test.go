package karabiner

import (
	"reflect"
	"testing"
)

func TestShellActionEvents(t *testing.T) {
	a := ShellAction("open -a Safari")
	got := a.Events()

	want := []ToEvent{{ShellCommand: "open -a Safari"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Events() = %+v, want %+v", got, want)
	}
}

func TestKeyActionEvents(t *testing.T) {
	a := KeyAction("a")
	got := a.Events()

	if len(got) != 1 {
		t.Fatalf("Events() returned %d events, want 1", len(got))
	}
	if got[0].KeyCode != "a" {
		t.Errorf("KeyCode = %q, want %q", got[0].KeyCode, "a")
	}
	if got[0].HoldDownMilliseconds != 0 {
		t.Errorf("single key should carry no hold, got %d", got[0].HoldDownMilliseconds)
	}
	if got[0].Modifiers != nil {
		t.Errorf("Modifiers = %v, want nil", got[0].Modifiers)
	}
}

func TestKeysActionMacroHold(t *testing.T) {
	a := KeysAction([]string{"a", "b", "c"})
	got := a.Events()

	if len(got) != 3 {
		t.Fatalf("Events() returned %d events, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].KeyCode != want {
			t.Errorf("event %d: KeyCode = %q, want %q", i, got[i].KeyCode, want)
		}
		if got[i].HoldDownMilliseconds != macroKeyHoldMS {
			t.Errorf("event %d: hold = %d, want %d", i, got[i].HoldDownMilliseconds, macroKeyHoldMS)
		}
	}
}

func TestKeysActionModifiersOnEveryElement(t *testing.T) {
	a := KeysAction([]string{"c", "f", "v", "return_or_enter"}, "left_command")
	got := a.Events()

	if len(got) != 4 {
		t.Fatalf("Events() returned %d events, want 4", len(got))
	}
	for i := range got {
		if !reflect.DeepEqual(got[i].Modifiers, []string{"left_command"}) {
			t.Errorf("event %d: Modifiers = %v, want [left_command]", i, got[i].Modifiers)
		}
	}
}

func TestKeysActionClassifiesOutputs(t *testing.T) {
	a := KeyAction("button4")
	got := a.Events()

	if got[0].PointingButton != "button4" {
		t.Errorf("PointingButton = %q, want %q", got[0].PointingButton, "button4")
	}
	if got[0].KeyCode != "" {
		t.Errorf("KeyCode = %q, want empty", got[0].KeyCode)
	}
}

func TestSequenceActionEvents(t *testing.T) {
	a := SequenceAction(
		ActionEvent{KeyCode: "f", Modifiers: []string{"left_shift"}},
		ActionEvent{ShellCommand: "say done"},
		ActionEvent{KeyCode: "p", HoldDownMilliseconds: 20},
		ActionEvent{KeyCode: "spacebar"},
	)
	got := a.Events()

	want := []ToEvent{
		{KeyCode: "f", Modifiers: []string{"left_shift"}},
		{ShellCommand: "say done"},
		{KeyCode: "p", HoldDownMilliseconds: 20},
		{KeyCode: "spacebar"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Events() = %+v, want %+v", got, want)
	}
}

func TestSequenceActionNoHoldWhenZero(t *testing.T) {
	a := SequenceAction(ActionEvent{KeyCode: "g"})
	got := a.Events()

	if got[0].HoldDownMilliseconds != 0 {
		t.Errorf("hold = %d, want 0", got[0].HoldDownMilliseconds)
	}
}

func TestActionKind(t *testing.T) {
	tests := []struct {
		action Action
		want   ActionKind
	}{
		{ShellAction("ls"), ActionShell},
		{SequenceAction(ActionEvent{KeyCode: "a"}), ActionSequence},
		{KeyAction("a"), ActionKeys},
		{KeysAction([]string{"a", "b"}), ActionKeys},
	}

	for _, tt := range tests {
		if got := tt.action.Kind(); got != tt.want {
			t.Errorf("Kind() = %v, want %v", got, tt.want)
		}
	}
}

func TestActionEventsOrderPreserved(t *testing.T) {
	// Output order is input order; the serializer never reorders.
	a := KeysAction([]string{"z", "a", "m"})
	got := a.Events()

	order := []string{"z", "a", "m"}
	for i, want := range order {
		if got[i].KeyCode != want {
			t.Errorf("event %d: KeyCode = %q, want %q", i, got[i].KeyCode, want)
		}
	}
}
