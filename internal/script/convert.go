package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/vovakirdan/boxworld/internal/content"
)

// toTable copies a state map into a fresh Lua table. Values of unsupported
// types are skipped.
func toTable(L *lua.LState, s content.State) *lua.LTable {
	t := L.NewTable()
	for k, v := range s {
		if lv := toValue(v); lv != lua.LNil {
			t.RawSetString(k, lv)
		}
	}
	return t
}

func toValue(v any) lua.LValue {
	switch x := v.(type) {
	case bool:
		return lua.LBool(x)
	case int:
		return lua.LNumber(x)
	case int64:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	case string:
		return lua.LString(x)
	}
	return lua.LNil
}

func fromValue(lv lua.LValue) (any, bool) {
	switch x := lv.(type) {
	case lua.LBool:
		return bool(x), true
	case lua.LNumber:
		return float64(x), true
	case lua.LString:
		return string(x), true
	}
	return nil, false
}

// syncState copies the string-keyed scalar entries of t back into s.
// Only keys that toTable exposed can be deleted, when the script assigned them
// nil; values Lua cannot represent stay as they were.
func syncState(s content.State, t *lua.LTable) {
	if s == nil {
		return
	}
	exposed := make(map[string]bool, len(s))
	for k, v := range s {
		if toValue(v) != lua.LNil {
			exposed[k] = true
		}
	}
	seen := make(map[string]bool, len(s))
	t.ForEach(func(k, v lua.LValue) {
		key, ok := k.(lua.LString)
		if !ok {
			return
		}
		if val, ok := fromValue(v); ok {
			s[string(key)] = val
			seen[string(key)] = true
		}
	})
	for k := range exposed {
		if !seen[k] {
			delete(s, k)
		}
	}
}

// lStr reads a string field from a Lua table.
func lStr(t *lua.LTable, key string) string {
	v := t.RawGetString(key)
	if v == lua.LNil {
		return ""
	}
	return lua.LVAsString(v)
}
