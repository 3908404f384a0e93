package config

import (
	"fmt"
	"sort"

	"github.com/mousemapper/mousemapper/internal/karabiner"
)

// Ordering classes for the manipulator plan. The engine applies the first
// matching manipulator, so more specific rules must precede less specific
// ones.
const (
	classLayerDef = iota
	classLayerApp
	classLayer
	classApp
	classGlobal
)

// plannedRule pairs a compiled manipulator with its ordering class and
// original position.
type plannedRule struct {
	class int
	index int
	m     *karabiner.Manipulator
}

// Build compiles every blueprint entry into an ordered manipulator plan:
// layer definitions, then layer+app rules, layer rules, app rules, and
// global defaults, preserving input order within each class.
func Build(bp *Blueprint, dev karabiner.DeviceID) ([]*karabiner.Manipulator, error) {
	known := knownLayers(bp)
	planned := make([]plannedRule, 0, len(bp.Layers)+len(bp.Buttons))

	for i, layer := range bp.Layers {
		m, err := buildLayer(layer, i, dev)
		if err != nil {
			return nil, err
		}
		planned = append(planned, plannedRule{class: classLayerDef, index: len(planned), m: m})
	}

	for i, btn := range bp.Buttons {
		m, err := buildButton(btn, i, known, dev)
		if err != nil {
			return nil, err
		}
		planned = append(planned, plannedRule{class: buttonClass(btn), index: len(planned), m: m})
	}

	sort.SliceStable(planned, func(i, j int) bool {
		if planned[i].class != planned[j].class {
			return planned[i].class < planned[j].class
		}
		return planned[i].index < planned[j].index
	})

	out := make([]*karabiner.Manipulator, len(planned))
	for i, p := range planned {
		out[i] = p.m
	}
	return out, nil
}

// knownLayers collects every layer variable the blueprint declares, from
// the layers section and from buttons that define their own variable.
func knownLayers(bp *Blueprint) map[string]bool {
	known := make(map[string]bool)
	for _, l := range bp.Layers {
		known[l.Variable] = true
	}
	for _, b := range bp.Buttons {
		if b.Variable != "" {
			known[b.Variable] = true
		}
	}
	return known
}

// buttonClass returns the ordering class for a button entry.
func buttonClass(e ButtonEntry) int {
	switch {
	case e.Layer != "" && e.App != "":
		return classLayerApp
	case e.Layer != "":
		return classLayer
	case e.App != "":
		return classApp
	default:
		return classGlobal
	}
}

// buildLayer compiles one layer declaration.
func buildLayer(e LayerEntry, index int, dev karabiner.DeviceID) (*karabiner.Manipulator, error) {
	if e.Variable == "" {
		return nil, &EntryError{Section: "layers", Index: index, Message: "missing variable"}
	}
	if e.Button == "" {
		return nil, &EntryError{Section: "layers", Index: index, Message: "missing button"}
	}

	name := e.Behavior
	if name == "" {
		name = "modifier"
	}
	behavior, ok := karabiner.BehaviorFromName(name)
	if !ok || !behavior.RequiresLayerVariable() {
		return nil, &EntryError{
			Section: "layers",
			Index:   index,
			Message: fmt.Sprintf("behavior %q cannot define a layer", name),
			Err:     ErrUnknownBehaviorName,
		}
	}

	cfg := karabiner.ButtonConfig{
		ButtonID:      e.Button,
		Behavior:      behavior,
		LayerVariable: e.Variable,
		ThresholdMS:   e.ThresholdMS,
		TapAction:     layerAction(e),
	}

	m, err := karabiner.Compile(cfg, dev)
	if err != nil {
		return nil, &EntryError{Section: "layers", Index: index, Message: err.Error(), Err: err}
	}
	return m, nil
}

// layerAction builds the optional tap action of a dual/virtual layer key.
func layerAction(e LayerEntry) *karabiner.Action {
	switch {
	case e.Shell != "":
		a := karabiner.ShellAction(e.Shell)
		return &a
	case len(e.Keys) > 0:
		a := karabiner.KeysAction(e.Keys, e.Modifiers...)
		return &a
	default:
		return nil
	}
}

// buildButton compiles one button entry and injects its scope conditions.
func buildButton(e ButtonEntry, index int, known map[string]bool, dev karabiner.DeviceID) (*karabiner.Manipulator, error) {
	if e.Layer != "" && !known[e.Layer] {
		return nil, &EntryError{
			Section: "buttons",
			Index:   index,
			Message: fmt.Sprintf("unknown layer %q", e.Layer),
			Err:     ErrUnknownLayer,
		}
	}

	behavior, err := entryBehavior(e, index)
	if err != nil {
		return nil, err
	}

	cfg := karabiner.ButtonConfig{
		ButtonID:                e.ID,
		Chord:                   e.Chord,
		Behavior:                behavior,
		TapAction:               entryAction(e),
		LayerVariable:           e.Variable,
		ThresholdMS:             e.ThresholdMS,
		MandatoryModifiers:      e.MandatoryModifiers,
		SimultaneousThresholdMS: e.SimultaneousThresholdMS,
	}

	m, err := karabiner.Compile(cfg, dev)
	if err != nil {
		return nil, &EntryError{Section: "buttons", Index: index, Message: err.Error(), Err: err}
	}

	if e.OptionalAny {
		m.AllowAnyModifiers()
	}
	m.AddAppRestriction(e.App)
	if e.Layer != "" {
		m.AddLayerCondition(e.Layer, e.layerValue())
	}
	return m, nil
}

// entryBehavior resolves the behavior name with defaults: chorded entries
// default to simultaneous, everything else to click.
func entryBehavior(e ButtonEntry, index int) (karabiner.ButtonBehavior, error) {
	name := e.Behavior
	if name == "" {
		if len(e.Chord) > 0 {
			name = "simultaneous"
		} else {
			name = "click"
		}
	}
	behavior, ok := karabiner.BehaviorFromName(name)
	if !ok {
		return 0, &EntryError{
			Section: "buttons",
			Index:   index,
			Message: fmt.Sprintf("unknown behavior %q", name),
			Err:     ErrUnknownBehaviorName,
		}
	}
	return behavior, nil
}

// entryAction builds the entry's action: shell wins, then a sequence,
// then the legacy key list.
func entryAction(e ButtonEntry) *karabiner.Action {
	switch {
	case e.Shell != "":
		a := karabiner.ShellAction(e.Shell)
		return &a
	case len(e.Sequence) > 0:
		events := make([]karabiner.ActionEvent, 0, len(e.Sequence))
		for _, s := range e.Sequence {
			events = append(events, karabiner.ActionEvent{
				KeyCode:              s.Key,
				Modifiers:            s.Modifiers,
				ShellCommand:         s.Shell,
				HoldDownMilliseconds: s.HoldDownMS,
			})
		}
		a := karabiner.SequenceAction(events...)
		return &a
	case len(e.Keys) > 0:
		a := karabiner.KeysAction(e.Keys, e.Modifiers...)
		return &a
	default:
		return nil
	}
}
