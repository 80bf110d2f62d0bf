// Package content defines the static world data the engine runs on: levels,
// entities, dialogue trees and the scripted predicate/effect capability that
// content authors use to branch dialogue.
package content

// State is an open, schema-less key/value map scoped to one entity (or to the
// whole session for globals). Values are bool, float64, int or string.
type State map[string]any

// Bool returns the boolean stored under key, or false.
func (s State) Bool(key string) bool {
	v, _ := s[key].(bool)
	return v
}

// String returns the string stored under key, or "".
func (s State) String(key string) string {
	v, _ := s[key].(string)
	return v
}

// Number returns the numeric value stored under key as float64.
func (s State) Number(key string) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Item is an inventory entry. Name is the de-duplication key.
type Item struct {
	ID    string
	Name  string
	Asset string
}
