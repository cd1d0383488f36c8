package stanza

// SubNode is a scoped builder for "a new child of parent". While open it
// behaves exactly like a freshly constructed detached node, with the
// whole Node API available through embedding. Close attaches the built
// node as the last child of the parent; the usual pattern defers it so
// the attach happens on every exit path, early returns and panics
// included:
//
//	item := stanza.NewSub(parent, "item")
//	defer item.Close()
//	item.SetAttribute("id", id)
type SubNode struct {
	*Node
	parent *Node
}

// NewSub starts building a child of parent with the given name (which
// may embed a namespace, as with New).
func NewSub(parent *Node, name string) *SubNode {
	return &SubNode{Node: New(name), parent: parent}
}

// NewSubNS starts building a child of parent with an explicit namespace.
func NewSubNS(parent *Node, xmlns, name string) *SubNode {
	return &SubNode{Node: NewNS(xmlns, name), parent: parent}
}

// Close attaches the built node to the designated parent. Closing more
// than once attaches exactly once; later calls are no-ops.
func (s *SubNode) Close() {
	if s.parent == nil {
		return
	}
	s.parent.AddChild(s.Node)
	s.parent = nil
}
