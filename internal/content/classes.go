package content

import "strings"

// Classes is an ordered set of display class tags.
type Classes []string

// Has reports whether tag is present.
func (c Classes) Has(tag string) bool {
	for _, t := range c {
		if t == tag {
			return true
		}
	}
	return false
}

// Add appends tag if missing. It returns true when the set changed.
func (c *Classes) Add(tag string) bool {
	if tag == "" || c.Has(tag) {
		return false
	}
	*c = append(*c, tag)
	return true
}

// Remove drops every tag for which drop returns true.
// It returns true when the set changed.
func (c *Classes) Remove(drop func(string) bool) bool {
	kept := (*c)[:0]
	for _, t := range *c {
		if !drop(t) {
			kept = append(kept, t)
		}
	}
	changed := len(kept) != len(*c)
	*c = kept
	return changed
}

// RemoveTag drops one exact tag.
func (c *Classes) RemoveTag(tag string) bool {
	return c.Remove(func(t string) bool { return t == tag })
}

// RemoveContaining drops every tag containing substr.
func (c *Classes) RemoveContaining(substr string) bool {
	return c.Remove(func(t string) bool { return strings.Contains(t, substr) })
}

// Copy returns an independent copy.
func (c Classes) Copy() []string {
	out := make([]string, len(c))
	copy(out, c)
	return out
}
