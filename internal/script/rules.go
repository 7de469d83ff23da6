// Package script evaluates the optional user rules file.
//
// A rules script is a small Lua program that pins explicit keybindings for
// named albums before allocation runs:
//
//	pins = {
//	    ["Family"] = "f",
//	    ["Archive 2019"] = "z9",
//	}
//
// Pinned bindings constrain the allocator exactly like committed branches.
// The script runs in a restricted state: only the base, string, table, and
// math libraries are opened, mirroring the sandboxing posture of plugin
// hosts that embed Lua.
package script

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/photokeys/internal/catalog"
	"github.com/dshills/photokeys/internal/keybind"
)

// pinsGlobal is the global table the script must populate.
const pinsGlobal = "pins"

var bindingPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// Rules holds user-pinned keybindings keyed by exact album name.
type Rules struct {
	pins map[string]string
}

// Rejection records a pin that could not be honored.
type Rejection struct {
	Name    string
	Binding string
	Reason  string
}

// Load reads and evaluates the rules script at path.
func Load(path string) (*Rules, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules %s: %w", path, err)
	}
	rules, err := Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("rules %s: %w", path, err)
	}
	return rules, nil
}

// Parse evaluates rules source and extracts the pins table.
func Parse(src string) (*Rules, error) {
	L := newState()
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("evaluating rules: %w", err)
	}

	rules := &Rules{pins: make(map[string]string)}

	v := L.GetGlobal(pinsGlobal)
	if v == lua.LNil {
		return rules, nil
	}
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("global %q: got %s, want table", pinsGlobal, v.Type())
	}

	var badEntry error
	tbl.ForEach(func(k, val lua.LValue) {
		if badEntry != nil {
			return
		}
		name, ok := k.(lua.LString)
		if !ok {
			badEntry = fmt.Errorf("global %q: key %s is not a string", pinsGlobal, k.String())
			return
		}
		binding, ok := val.(lua.LString)
		if !ok {
			badEntry = fmt.Errorf("global %q: value for %q is not a string", pinsGlobal, string(name))
			return
		}
		rules.pins[string(name)] = string(binding)
	})
	if badEntry != nil {
		return nil, badEntry
	}

	return rules, nil
}

// newState creates a Lua state with only safe libraries opened.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.TabLibName, lua.OpenTable},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	return L
}

// Pin returns the pinned binding for an album name.
func (r *Rules) Pin(name string) (string, bool) {
	b, ok := r.pins[name]
	return b, ok
}

// Len returns the number of pins.
func (r *Rules) Len() int {
	return len(r.pins)
}

// Apply matches pins against albums by exact name and returns a validated
// pin table for keybind.AllocateWithPins, plus the pins rejected and why.
// Albums are considered in ID order, so collisions resolve deterministically:
// the first album keeps the pin.
func (r *Rules) Apply(albums []catalog.Album) (keybind.Table, []Rejection) {
	pins := make(keybind.Table)
	var rejected []Rejection

	for _, a := range catalog.SortByID(albums) {
		binding, ok := r.pins[a.Name]
		if !ok {
			continue
		}
		if reason := pinProblem(binding, pins); reason != "" {
			rejected = append(rejected, Rejection{Name: a.Name, Binding: binding, Reason: reason})
			continue
		}
		pins[a.ID] = binding
	}

	// Pins naming no album in the snapshot are reported too, so a typo in
	// the rules file surfaces instead of silently doing nothing.
	names := make(map[string]bool, len(albums))
	for _, a := range albums {
		names[a.Name] = true
	}
	var unmatched []string
	for name := range r.pins {
		if !names[name] {
			unmatched = append(unmatched, name)
		}
	}
	sort.Strings(unmatched)
	for _, name := range unmatched {
		rejected = append(rejected, Rejection{Name: name, Binding: r.pins[name], Reason: "no album with this name"})
	}

	return pins, rejected
}

// pinProblem reports why binding cannot join the accepted pin set, or ""
// when it can.
func pinProblem(binding string, accepted keybind.Table) string {
	if !bindingPattern.MatchString(binding) {
		return "binding must be lowercase letters and digits"
	}
	for _, existing := range accepted.Values() {
		if existing == binding {
			return "binding already pinned to another album"
		}
		if strings.HasPrefix(existing, binding) || strings.HasPrefix(binding, existing) {
			return fmt.Sprintf("binding conflicts with pin %q", existing)
		}
	}
	return ""
}
