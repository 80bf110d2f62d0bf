package engine

import "github.com/vovakirdan/boxworld/internal/content"

// Inventory is the session's item set, keyed by item name, in grant order.
type Inventory struct {
	items []content.Item
}

// Has reports whether an item with this name is held.
func (inv *Inventory) Has(name string) bool {
	for _, it := range inv.items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// Add stores item unless one with the same name is held.
func (inv *Inventory) Add(item content.Item) bool {
	if inv.Has(item.Name) {
		return false
	}
	inv.items = append(inv.items, item)
	return true
}

// Len returns the number of held items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Items returns a copy of the held items.
func (inv *Inventory) Items() []content.Item {
	out := make([]content.Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Names returns the held item names in grant order.
func (inv *Inventory) Names() []string {
	out := make([]string, len(inv.items))
	for i, it := range inv.items {
		out[i] = it.Name
	}
	return out
}
