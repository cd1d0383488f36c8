// Package stanza implements the in-memory XML element tree exchanged on
// an XMPP-style stream: a node with a name, attributes, ordered children,
// and the text immediately inside and immediately after it. The tree is
// built either directly or by feeding tokens from a streaming parser, and
// is serialized back to a wire fragment with Dumper.
//
// A tree must be confined to a single goroutine; no operation in this
// package synchronizes.
package stanza

import (
	"slices"
	"strings"
)

const Version = "0.1.0"

// NSSep separates a namespace URI from a local name inside a single name
// string, e.g. "jabber:client\x01message". Constructors split on the last
// occurrence; the prefix becomes the xmlns attribute.
const NSSep = "\x01"

// NSAttr is the reserved attribute key under which a node's namespace URI
// is stored. The namespace deliberately lives in the generic attribute map
// so that producers reading it back through Attribute keep working, and so
// it serializes like any other attribute.
const NSAttr = "xmlns"

// DefaultEncoding is the charset assumed for text that is not valid UTF-8
// when no other encoding has been configured.
const DefaultEncoding = "iso-8859-1"

// Node is a single XML element. The zero value is not usable; create
// nodes with New, NewNS, or the CreateChild methods.
type Node struct {
	name     string
	parent   *Node
	attrs    map[string]string
	children []*Node
	inner    string
	tail     string
}

// Attr is a rendered attribute pair, as returned by Attributes.
type Attr struct {
	Name  string
	Value string
}

// New creates a detached node. If name embeds a namespace as
// "uri\x01local", the name is split at the last separator and the prefix
// is stored as the xmlns attribute.
func New(name string) *Node {
	n := &Node{attrs: make(map[string]string)}
	if i := strings.LastIndex(name, NSSep); i >= 0 {
		n.name = name[i+len(NSSep):]
		n.attrs[NSAttr] = name[:i]
	} else {
		n.name = name
	}
	return n
}

// NewNS creates a detached node with an explicit namespace URI. No
// separator splitting takes place.
func NewNS(xmlns, name string) *Node {
	return &Node{
		name:  name,
		attrs: map[string]string{NSAttr: xmlns},
	}
}

// Name returns the local element name.
func (n *Node) Name() string {
	return n.name
}

// SetName replaces the local element name. Unlike the constructors it
// never splits out an embedded namespace.
func (n *Node) SetName(name string) {
	n.name = name
}

// Namespace returns the node's namespace URI, or "" when none is set.
// It reads the xmlns attribute.
func (n *Node) Namespace() string {
	return n.attrs[NSAttr]
}

// SetNamespace sets the node's namespace URI by writing the xmlns
// attribute.
func (n *Node) SetNamespace(uri string) {
	n.attrs[NSAttr] = uri
}

// SetAttribute sets the attribute with the given name, overwriting any
// previous value.
func (n *Node) SetAttribute(name, value string) {
	n.attrs[name] = value
}

// Attribute returns the value of the named attribute, or "" when the
// node has no such attribute. Absence is not an error; use HasAttribute
// to distinguish a missing attribute from an empty value.
func (n *Node) Attribute(name string) string {
	return n.attrs[name]
}

// HasAttribute reports whether the named attribute is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// RemoveAttribute removes the named attribute. It reports whether an
// attribute was actually removed; removing xmlns drops the namespace
// association.
func (n *Node) RemoveAttribute(name string) bool {
	if _, ok := n.attrs[name]; !ok {
		return false
	}
	delete(n.attrs, name)
	return true
}

// Attributes populates dst with the node's attributes in sorted name
// order and returns it. If dst is nil a new slice is allocated. Sorted
// order is the serialization order, independent of insertion order.
func (n *Node) Attributes(dst []Attr) []Attr {
	if dst == nil {
		dst = make([]Attr, 0, len(n.attrs))
	} else {
		dst = dst[:0]
	}
	for _, name := range n.attrNames() {
		dst = append(dst, Attr{Name: name, Value: n.attrs[name]})
	}
	return dst
}

func (n *Node) attrNames() []string {
	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
