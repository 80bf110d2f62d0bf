package content

// Predicate decides whether a dialogue node is available for an entity's state.
type Predicate interface {
	Eval(s State) bool
}

// World is the engine handle an Effect may act on. It is the only write path
// from scripted content into engine state.
type World interface {
	// Globals returns the session-wide script state.
	Globals() State
	// HasItem reports whether an item with this name is held.
	HasItem(name string) bool
	// GrantItem adds an item unless one with the same name is held.
	GrantItem(item Item) bool
	// SwitchLevel moves to another level; unknown ids are a no-op.
	SwitchLevel(id string) bool
	// Finish ends the game.
	Finish()
}

// Effect is a side effect run when a choice response is selected.
type Effect interface {
	Apply(s State, w World)
}

// PredicateFunc adapts a function to Predicate.
type PredicateFunc func(s State) bool

// Eval calls f(s).
func (f PredicateFunc) Eval(s State) bool {
	return f(s)
}

// EffectFunc adapts a function to Effect.
type EffectFunc func(s State, w World)

// Apply calls f(s, w).
func (f EffectFunc) Apply(s State, w World) {
	f(s, w)
}

// StateEquals passes when every key holds the given value.
// A missing key compares as the zero value of the expected type.
type StateEquals map[string]any

// Eval implements Predicate.
func (p StateEquals) Eval(s State) bool {
	for k, want := range p {
		got, ok := s[k]
		if !ok {
			got = zeroLike(want)
		}
		if !sameValue(got, want) {
			return false
		}
	}
	return true
}

// AllOf passes when every predicate passes.
type AllOf []Predicate

// Eval implements Predicate.
func (p AllOf) Eval(s State) bool {
	for _, q := range p {
		if q != nil && !q.Eval(s) {
			return false
		}
	}
	return true
}

// SetState writes fixed values into the entity state.
type SetState map[string]any

// Apply implements Effect.
func (e SetState) Apply(s State, _ World) {
	for k, v := range e {
		s[k] = v
	}
}

// Grant gives an item through the world handle.
type Grant struct {
	Item Item
}

// Apply implements Effect.
func (e Grant) Apply(_ State, w World) {
	w.GrantItem(e.Item)
}

// GoTo switches level through the world handle.
type GoTo struct {
	Level string
}

// Apply implements Effect.
func (e GoTo) Apply(_ State, w World) {
	w.SwitchLevel(e.Level)
}

// Effects runs several effects in order.
type Effects []Effect

// Apply implements Effect.
func (e Effects) Apply(s State, w World) {
	for _, eff := range e {
		if eff != nil {
			eff.Apply(s, w)
		}
	}
}

func zeroLike(v any) any {
	switch v.(type) {
	case bool:
		return false
	case string:
		return ""
	case int, int64, float64:
		return 0.0
	}
	return nil
}

func sameValue(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
