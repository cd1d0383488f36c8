package stanza

// Inner returns the text inside the element, before its first child.
func (n *Node) Inner() string {
	return n.inner
}

// SetInner replaces the inner text.
func (n *Node) SetInner(data string) {
	n.inner = data
}

// AppendInner appends data to the inner text. This exists because a
// streaming parser may deliver the text of an element across several
// calls; appending the fragments is equivalent to setting the whole
// string at once.
func (n *Node) AppendInner(data string) {
	n.inner += data
}

// Tail returns the text immediately following the element's closing tag,
// at the same nesting level as the element itself.
func (n *Node) Tail() string {
	return n.tail
}

// SetTail replaces the tail text.
func (n *Node) SetTail(data string) {
	n.tail = data
}

// AppendTail appends data to the tail text. See AppendInner.
func (n *Node) AppendTail(data string) {
	n.tail += data
}
