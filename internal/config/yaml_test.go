package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const testBlueprintYAML = `
title: Naga HyperSpeed
device:
  vendor_id: 1678
  product_id: 181
layers:
  - variable: naga_hyper_mode
    button: button3
buttons:
  - id: "1"
    layer: naga_hyper_mode
    keys: ["1"]
    modifiers: [left_option, left_shift]
    optional_any: true
  - id: hyphen
    app: '^com\.google\.Chrome$'
    keys: [c, f, v, return_or_enter]
    modifiers: [left_command]
  - id: "2"
    keys: [mission_control]
  - chord: ["1", "2"]
    keys: [delete_or_backspace]
  - id: equal_sign
    shell: open -a Safari
  - id: "7"
    app: '^org\.gnu\.Emacs$'
    sequence:
      - key: spacebar
      - key: g
      - key: g
`

func TestYAMLLoaderParse(t *testing.T) {
	bp, err := NewYAMLLoader("test.yaml").LoadFromReader(strings.NewReader(testBlueprintYAML))
	if err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}

	if bp.Title != "Naga HyperSpeed" {
		t.Errorf("Title = %q", bp.Title)
	}
	if len(bp.Buttons) != 6 {
		t.Fatalf("Buttons has %d entries, want 6", len(bp.Buttons))
	}
}

func TestYAMLTOMLParity(t *testing.T) {
	// The same blueprint in either format must parse identically.
	fromTOML, err := NewTOMLLoader("test.toml").LoadFromReader(strings.NewReader(testBlueprintTOML))
	if err != nil {
		t.Fatalf("TOML LoadFromReader() error: %v", err)
	}
	fromYAML, err := NewYAMLLoader("test.yaml").LoadFromReader(strings.NewReader(testBlueprintYAML))
	if err != nil {
		t.Fatalf("YAML LoadFromReader() error: %v", err)
	}

	if !reflect.DeepEqual(fromTOML, fromYAML) {
		t.Errorf("blueprints differ:\nTOML: %+v\nYAML: %+v", fromTOML, fromYAML)
	}
}

func TestYAMLLoaderParseError(t *testing.T) {
	_, err := NewYAMLLoader("bad.yaml").LoadFromReader(strings.NewReader("title: [unclosed"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
}
