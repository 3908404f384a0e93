package script

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/mousemapper/mousemapper/internal/config"
)

// ErrScriptFailed wraps Lua evaluation failures.
var ErrScriptFailed = errors.New("blueprint script failed")

// Load evaluates a Lua blueprint file.
func Load(path string) (*config.Blueprint, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", config.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading blueprint script %s: %w", path, err)
	}
	return LoadSource(path, string(src))
}

// LoadSource evaluates Lua blueprint source. The name is used in error
// messages only.
func LoadSource(name, source string) (*config.Blueprint, error) {
	L, err := newSandboxedState()
	if err != nil {
		return nil, err
	}
	defer L.Close()

	b := &builder{bp: &config.Blueprint{}}
	b.register(L)

	fn, err := L.LoadString(source)
	if err != nil {
		return nil, &config.ParseError{Path: name, Message: err.Error(), Err: err}
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrScriptFailed, name, err)
	}

	return b.bp, nil
}

// newSandboxedState opens a Lua state with only the safe standard
// libraries: no io, no os, no package loading.
func newSandboxedState() (*lua.LState, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("opening lua library %s: %w", lib.name, err)
		}
	}

	// OpenBase installs dofile/loadfile; remove the file-system escape
	// hatches it brings along.
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)

	return L, nil
}

// builder accumulates blueprint entries from mm.* calls.
type builder struct {
	bp *config.Blueprint
}

// register installs the mm module into the Lua state.
func (b *builder) register(L *lua.LState) {
	mod := L.NewTable()
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"title":  b.luaTitle,
		"device": b.luaDevice,
		"layer":  b.luaLayer,
		"button": b.luaButton,
	})
	L.SetGlobal("mm", mod)
}

func (b *builder) luaTitle(L *lua.LState) int {
	b.bp.Title = L.CheckString(1)
	return 0
}

func (b *builder) luaDevice(L *lua.LState) int {
	t := L.CheckTable(1)
	b.bp.Device = config.DeviceEntry{
		Name:      tblString(t, "name"),
		VendorID:  tblInt(t, "vendor_id"),
		ProductID: tblInt(t, "product_id"),
	}
	return 0
}

func (b *builder) luaLayer(L *lua.LState) int {
	t := L.CheckTable(1)
	b.bp.Layers = append(b.bp.Layers, config.LayerEntry{
		Variable:    tblString(t, "variable"),
		Button:      tblString(t, "button"),
		Behavior:    tblString(t, "behavior"),
		ThresholdMS: tblInt(t, "threshold_ms"),
		Shell:       tblString(t, "shell"),
		Keys:        tblStrings(t, "keys"),
		Modifiers:   tblStrings(t, "modifiers"),
	})
	return 0
}

func (b *builder) luaButton(L *lua.LState) int {
	t := L.CheckTable(1)
	b.bp.Buttons = append(b.bp.Buttons, config.ButtonEntry{
		ID:                      tblString(t, "id"),
		Chord:                   tblStrings(t, "chord"),
		Behavior:                tblString(t, "behavior"),
		Layer:                   tblString(t, "layer"),
		LayerValue:              tblInt(t, "layer_value"),
		App:                     tblString(t, "app"),
		Variable:                tblString(t, "variable"),
		Shell:                   tblString(t, "shell"),
		Keys:                    tblStrings(t, "keys"),
		Modifiers:               tblStrings(t, "modifiers"),
		Sequence:                tblSequence(t),
		ThresholdMS:             tblInt(t, "threshold_ms"),
		MandatoryModifiers:      tblStrings(t, "mandatory_modifiers"),
		OptionalAny:             tblBool(t, "optional_any"),
		SimultaneousThresholdMS: tblInt(t, "simultaneous_threshold_ms"),
	})
	return 0
}

// tblString reads a string field, or "" if absent.
func tblString(t *lua.LTable, key string) string {
	if v, ok := t.RawGetString(key).(lua.LString); ok {
		return string(v)
	}
	return ""
}

// tblInt reads an integer field, or 0 if absent.
func tblInt(t *lua.LTable, key string) int {
	if v, ok := t.RawGetString(key).(lua.LNumber); ok {
		return int(v)
	}
	return 0
}

// tblBool reads a boolean field, or false if absent.
func tblBool(t *lua.LTable, key string) bool {
	if v, ok := t.RawGetString(key).(lua.LBool); ok {
		return bool(v)
	}
	return false
}

// tblStrings reads a list-of-strings field. A bare string is treated as a
// one-element list. Element order is preserved.
func tblStrings(t *lua.LTable, key string) []string {
	switch v := t.RawGetString(key).(type) {
	case lua.LString:
		return []string{string(v)}
	case *lua.LTable:
		out := make([]string, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			if s, ok := v.RawGetInt(i).(lua.LString); ok {
				out = append(out, string(s))
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

// tblSequence reads the sequence field as a list of step tables.
func tblSequence(t *lua.LTable) []config.SequenceEntry {
	seq, ok := t.RawGetString("sequence").(*lua.LTable)
	if !ok {
		return nil
	}
	out := make([]config.SequenceEntry, 0, seq.Len())
	for i := 1; i <= seq.Len(); i++ {
		step, ok := seq.RawGetInt(i).(*lua.LTable)
		if !ok {
			continue
		}
		out = append(out, config.SequenceEntry{
			Key:        tblString(step, "key"),
			Modifiers:  tblStrings(step, "modifiers"),
			Shell:      tblString(step, "shell"),
			HoldDownMS: tblInt(step, "hold_down_ms"),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
