// Package naming maps icon names to output file names, optionally through a
// user supplied Lua function.
package naming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"
)

// Namer returns the base name (without extension) for a converted icon.
type Namer interface {
	Name(icon string) (string, error)
}

// Identity keeps names as they are.
type Identity struct{}

func (Identity) Name(icon string) (string, error) {
	return icon, nil
}

// LuaNamer calls Fn(name) in its Lua state. A State is not safe for
// concurrent use, neither is a LuaNamer.
type LuaNamer struct {
	Fn       string
	luaState *lua.State
}

func newLuaNamer(fn string, load func(*lua.State) error) (*LuaNamer, error) {
	if fn == "" {
		return nil, errors.New("missing value: naming function")
	}
	state := lua.NewState()
	lua.OpenLibraries(state)
	if err := load(state); err != nil {
		return nil, fmt.Errorf("loading naming script: %w", err)
	}

	state.Global(fn)
	isFn := state.IsFunction(-1)
	state.Pop(1)
	if !isFn {
		return nil, errors.New(fmt.Sprintf("naming function %v is not defined", fn))
	}

	return &LuaNamer{
		Fn:       fn,
		luaState: state,
	}, nil
}

// NewLuaNamerFile loads the script at path.
func NewLuaNamerFile(path, fn string) (*LuaNamer, error) {
	return newLuaNamer(fn, func(l *lua.State) error {
		return lua.DoFile(l, path)
	})
}

// NewLuaNamerString loads the script from source.
func NewLuaNamerString(source, fn string) (*LuaNamer, error) {
	return newLuaNamer(fn, func(l *lua.State) error {
		return lua.DoString(l, source)
	})
}

func (n *LuaNamer) Name(icon string) (string, error) {
	l := n.luaState
	// empty stack on the way out
	defer l.SetTop(0)

	l.Global(n.Fn)
	l.PushString(icon)
	if err := l.ProtectedCall(1, 1, 0); err != nil {
		return "", fmt.Errorf("naming %v: %w", icon, err)
	}

	name, ok := l.ToString(l.Top())
	if !ok {
		return "", errors.New(fmt.Sprintf("naming %v: %v did not return a string", icon, n.Fn))
	}

	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", errors.New(fmt.Sprintf("naming %v: invalid file name %q", icon, name))
	}
	return name, nil
}
