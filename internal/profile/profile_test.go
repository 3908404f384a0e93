package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mousemapper/mousemapper/internal/karabiner"
)

func compiledManipulator(t *testing.T) *karabiner.Manipulator {
	t.Helper()
	a := karabiner.KeyAction("c", "left_command")
	m, err := karabiner.Compile(karabiner.ButtonConfig{
		ButtonID:  "button4",
		Behavior:  karabiner.BehaviorClick,
		TapAction: &a,
	}, karabiner.DeviceID{VendorID: 1678, ProductID: 181})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	return m
}

func TestProfileJSON(t *testing.T) {
	p := New("MouseMapper Profile")
	p.AddRule("Global defaults", compiledManipulator(t))

	data, err := p.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var got Profile
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if got.Title != "MouseMapper Profile" {
		t.Errorf("Title = %q", got.Title)
	}
	if len(got.Rules) != 1 || got.Rules[0].Description != "Global defaults" {
		t.Errorf("Rules = %+v", got.Rules)
	}
	if !strings.HasPrefix(string(data), "{\n  \"title\"") {
		t.Errorf("expected two-space indented output, got %s", data[:40])
	}
}

func TestProfileJSONEmpty(t *testing.T) {
	if _, err := New("empty").JSON(); err != ErrEmptyProfile {
		t.Errorf("JSON() error = %v, want ErrEmptyProfile", err)
	}

	p := New("empty rule")
	p.AddRule("nothing")
	if _, err := p.JSON(); err != ErrEmptyRule {
		t.Errorf("JSON() error = %v, want ErrEmptyRule", err)
	}
}

func TestManipulatorCount(t *testing.T) {
	p := New("count")
	p.AddRule("a", compiledManipulator(t), compiledManipulator(t))
	p.AddRule("b", compiledManipulator(t))

	if got := p.ManipulatorCount(); got != 3 {
		t.Errorf("ManipulatorCount() = %d, want 3", got)
	}
}

func TestValidateAcceptsCompilerOutput(t *testing.T) {
	p := New("MouseMapper Profile")

	layerVar := "naga_hyper_mode"
	mod, err := karabiner.Compile(karabiner.ButtonConfig{
		ButtonID:      "button3",
		Behavior:      karabiner.BehaviorModifier,
		LayerVariable: layerVar,
	}, karabiner.DeviceID{VendorID: 1678, ProductID: 181})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	seq := karabiner.SequenceAction(
		karabiner.ActionEvent{KeyCode: "spacebar"},
		karabiner.ActionEvent{KeyCode: "g"},
		karabiner.ActionEvent{KeyCode: "g"},
	)
	click, err := karabiner.Compile(karabiner.ButtonConfig{
		ButtonID:  "7",
		Behavior:  karabiner.BehaviorClick,
		TapAction: &seq,
	}, karabiner.DeviceID{VendorID: 1678, ProductID: 181})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	click.AddAppRestriction("^org\\.gnu\\.Emacs$")
	click.AddLayerCondition(layerVar, 1)

	chordTap := karabiner.KeyAction("delete_or_backspace")
	chord, err := karabiner.Compile(karabiner.ButtonConfig{
		Chord:     []string{"1", "2"},
		Behavior:  karabiner.BehaviorSimultaneous,
		TapAction: &chordTap,
	}, karabiner.DeviceID{})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	p.AddRule("MouseMapper rules", mod, click, chord)

	data, err := p.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if err := Validate(data); err != nil {
		t.Errorf("Validate() rejected compiler output: %v", err)
	}
}

func TestValidateRejectsMissingFrom(t *testing.T) {
	bad := []byte(`{
  "title": "broken",
  "rules": [
    {
      "description": "missing from",
      "manipulators": [{"type": "basic"}]
    }
  ]
}`)

	if err := Validate(bad); err == nil {
		t.Error("Validate() accepted a manipulator without a from block")
	}
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	if err := Validate([]byte("{not json")); err == nil {
		t.Error("Validate() accepted malformed JSON")
	}
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "profile.json")

	if err := Write(path, []byte(`{"title":"x","rules":[]}`)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), `"title":"x"`) {
		t.Errorf("unexpected content: %s", data)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestWriteReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")

	if err := Write(path, []byte("old")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := Write(path, []byte("new")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}
