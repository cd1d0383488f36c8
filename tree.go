package stanza

// AddChild attaches child as the last child of n and returns it. The
// child is detached from any previous parent first, so a subtree has
// exactly one owner at a time. All attach paths (CreateChild, SubNode,
// the parser) funnel through here.
func (n *Node) AddChild(child *Node) *Node {
	if child == nil {
		return nil
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// CreateChild creates a node as with New and attaches it to n,
// returning the new child.
func (n *Node) CreateChild(name string) *Node {
	return n.AddChild(New(name))
}

// CreateChildNS creates a node as with NewNS and attaches it to n,
// returning the new child.
func (n *Node) CreateChildNS(xmlns, name string) *Node {
	return n.AddChild(NewNS(xmlns, name))
}

// Detach removes n from its parent's child list, if any, leaving n as
// the root of its own subtree.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Child returns the first child with the given local name and namespace
// URI, or nil when there is no match. The namespace is compared through
// the xmlns attribute.
func (n *Node) Child(name, xmlns string) *Node {
	for _, c := range n.children {
		if c.name == name && c.Attribute(NSAttr) == xmlns {
			return c
		}
	}
	return nil
}

// Children returns every child with the given local name and namespace
// URI, in child order. The result may be empty.
func (n *Node) Children(name, xmlns string) []*Node {
	var res []*Node
	for _, c := range n.children {
		if c.name == name && c.Attribute(NSAttr) == xmlns {
			res = append(res, c)
		}
	}
	return res
}

// LastChild returns the most recently attached child. Calling it on a
// childless node is a caller error; it returns nil in that case, so
// check HasChildren first.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// ChildNodes returns the node's children in order. The returned slice is
// the node's own backing store; callers must not modify it.
func (n *Node) ChildNodes() []*Node {
	return n.children
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// RemoveChildren detaches every child, leaving the node a leaf. Inner
// and tail text and the attributes are unaffected.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Parent returns the enclosing node, or nil for a root. The parent
// reference is for lookup only; it never owns anything.
func (n *Node) Parent() *Node {
	return n.parent
}

// Copy returns a deep copy of n's entire subtree. The copy is always
// detached: its parent is nil even when n is attached somewhere.
func (n *Node) Copy() *Node {
	c := &Node{
		name:  n.name,
		inner: n.inner,
		tail:  n.tail,
		attrs: make(map[string]string, len(n.attrs)),
	}
	for name, value := range n.attrs {
		c.attrs[name] = value
	}
	for _, child := range n.children {
		c.AddChild(child.Copy())
	}
	return c
}
