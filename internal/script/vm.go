// Package script compiles the Lua snippets that content authors attach to
// dialogue into content.Predicate and content.Effect values.
package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/vovakirdan/boxworld/internal/content"
)

// VM wraps a single gopher-lua state. One VM serves one game session.
// Single-goroutine access only (the engine tick).
type VM struct {
	vm      *lua.LState
	log     *log.Logger
	globals content.State
	chunks  int
}

// New creates a sandboxed VM: only the base, table, string and math
// libraries are opened and file access from the base library is removed.
func New(logger *log.Logger) (*VM, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("script: open %s: %w", lib.name, err)
		}
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("API_VERSION", lua.LNumber(1))

	return &VM{vm: L, log: logger, globals: content.State{}}, nil
}

// BindGlobals points predicates at the session's global state. Effects get
// globals through their content.World instead.
func (v *VM) BindGlobals(g content.State) {
	if g != nil {
		v.globals = g
	}
}

// Close shuts down the Lua VM.
func (v *VM) Close() {
	v.vm.Close()
}

// Predicate compiles a boolean expression. The expression sees `state`
// (the entity's behaviour state) and `globals` (session state), read-only.
func (v *VM) Predicate(expr string) (content.Predicate, error) {
	fn, err := v.compile("when", "return function(state, globals) return ("+expr+") end")
	if err != nil {
		return nil, err
	}
	return &predicate{vm: v, fn: fn, src: expr}, nil
}

// Effect compiles a statement block. The block sees `state`, which it may
// modify, and `world`, which exposes has_item, grant, go_to, finish and the
// writable `world.globals` table.
func (v *VM) Effect(body string) (content.Effect, error) {
	fn, err := v.compile("lua", "return function(state, world)\n"+body+"\nend")
	if err != nil {
		return nil, err
	}
	return &effect{vm: v, fn: fn, src: body}, nil
}

// compile loads a chunk and runs it once to obtain the function it returns.
func (v *VM) compile(kind, chunk string) (*lua.LFunction, error) {
	v.chunks++
	name := fmt.Sprintf("%s#%d", kind, v.chunks)
	loaded, err := v.vm.Load(strings.NewReader(chunk), name)
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	if err := v.vm.CallByParam(lua.P{
		Fn:      loaded,
		NRet:    1,
		Protect: true,
	}); err != nil {
		return nil, fmt.Errorf("script: init %s: %w", name, err)
	}
	result := v.vm.Get(-1)
	v.vm.Pop(1)
	fn, ok := result.(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("script: %s did not produce a function", name)
	}
	return fn, nil
}

type predicate struct {
	vm  *VM
	fn  *lua.LFunction
	src string
}

// Eval implements content.Predicate. Runtime errors evaluate to false.
func (p *predicate) Eval(s content.State) bool {
	L := p.vm.vm
	if err := L.CallByParam(lua.P{
		Fn:      p.fn,
		NRet:    1,
		Protect: true,
	}, toTable(L, s), toTable(L, p.vm.globals)); err != nil {
		p.vm.log.Error("lua predicate error", "expr", p.src, "error", err)
		return false
	}
	result := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(result)
}

type effect struct {
	vm  *VM
	fn  *lua.LFunction
	src string
}

// Apply implements content.Effect. Entity state and globals are written back
// only when the block runs to completion. World calls (grant, go_to, finish)
// take effect immediately, so any made before a runtime error stand.
func (e *effect) Apply(s content.State, w content.World) {
	L := e.vm.vm
	stateTbl := toTable(L, s)
	globalsTbl := toTable(L, w.Globals())
	worldTbl := e.vm.worldTable(w, globalsTbl)

	if err := L.CallByParam(lua.P{
		Fn:      e.fn,
		NRet:    0,
		Protect: true,
	}, stateTbl, worldTbl); err != nil {
		e.vm.log.Error("lua effect error", "body", e.src, "error", err)
		return
	}
	syncState(s, stateTbl)
	syncState(w.Globals(), globalsTbl)
}

func (v *VM) worldTable(w content.World, globals *lua.LTable) *lua.LTable {
	L := v.vm
	t := L.NewTable()
	t.RawSetString("globals", globals)
	t.RawSetString("has_item", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(w.HasItem(L.CheckString(1))))
		return 1
	}))
	t.RawSetString("grant", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(w.GrantItem(itemArg(L))))
		return 1
	}))
	t.RawSetString("go_to", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(w.SwitchLevel(L.CheckString(1))))
		return 1
	}))
	t.RawSetString("finish", L.NewFunction(func(L *lua.LState) int {
		w.Finish()
		return 0
	}))
	return t
}

// itemArg accepts either a name or a {id=, name=, asset=} table.
func itemArg(L *lua.LState) content.Item {
	if tbl, ok := L.Get(1).(*lua.LTable); ok {
		it := content.Item{
			ID:    lStr(tbl, "id"),
			Name:  lStr(tbl, "name"),
			Asset: lStr(tbl, "asset"),
		}
		if it.ID == "" {
			it.ID = it.Name
		}
		return it
	}
	name := L.CheckString(1)
	return content.Item{ID: name, Name: name}
}
