package content

// DialogueNode is one line of an entity's dialogue.
type DialogueNode struct {
	Text      string
	Class     string    // display class added to the entity while traversed
	Condition Predicate // nil means always available
	Reward    *Item
	Choices   []Choice
}

// Available reports whether the node may be shown for state s.
// Conditions are evaluated on every call; they may depend on mutable state.
func (n DialogueNode) Available(s State) bool {
	return n.Condition == nil || n.Condition.Eval(s)
}

// Choice is one selectable answer under a dialogue node.
type Choice struct {
	Text     string
	Class    string
	Reward   *Item
	Response *Response
}

// Response is the one-shot text shown after a choice is selected.
type Response struct {
	Text     string
	OnSelect Effect
	Reward   *Item
}

// NextAvailable returns the index of the first node after from whose
// condition passes, or -1. Indices <= from are never considered.
func NextAvailable(nodes []DialogueNode, from int, s State) int {
	for i := from + 1; i < len(nodes); i++ {
		if nodes[i].Available(s) {
			return i
		}
	}
	return -1
}
