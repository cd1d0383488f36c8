package stanza

import (
	"io"
	"strings"
)

// Dumper serializes a node and its subtree to an XML fragment. The
// output is not a document: no prolog, no DOCTYPE. It is meant to be
// streamed as one stanza inside an already-open outer element.
type Dumper struct {
	// Encoding is the legacy charset assumed for text that is not
	// valid UTF-8. Empty means DefaultEncoding.
	Encoding string

	// lenient degrades charset-conversion failures to best-effort
	// escaping instead of reporting them. Only Node.String uses this.
	lenient bool
}

func (d *Dumper) encodingName() string {
	if d.Encoding == "" {
		return DefaultEncoding
	}
	return d.Encoding
}

func (d *Dumper) sanitize(s string) (string, error) {
	out, err := Sanitize(s, d.encodingName())
	if err != nil && d.lenient {
		return Escape(StripInvalidXMLChars(s)), nil
	}
	return out, err
}

// DumpNode writes the serialization of n and its subtree to out. The
// tree itself can never make it fail: a childless node with empty inner
// text self-closes, missing text renders as nothing. The only errors it
// reports are write errors and charset-conversion failures from the
// sanitizer.
func (d *Dumper) DumpNode(out io.Writer, n *Node) error {
	if n == nil {
		return ErrNilNode
	}

	if _, err := io.WriteString(out, "<"+n.name); err != nil {
		return err
	}
	for _, name := range n.attrNames() {
		v, err := d.sanitize(n.attrs[name])
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, " "+name+"='"+v+"'"); err != nil {
			return err
		}
	}

	// The self-closing check looks at the raw inner text: text that
	// sanitizes away still forces an explicit closing tag.
	if !n.HasChildren() && n.inner == "" {
		if _, err := io.WriteString(out, "/>"); err != nil {
			return err
		}
	} else {
		inner, err := d.sanitize(n.inner)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, ">"+inner); err != nil {
			return err
		}
		for _, child := range n.children {
			if err := d.DumpNode(out, child); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, "</"+n.name+">"); err != nil {
			return err
		}
	}

	tail, err := d.sanitize(n.tail)
	if err != nil {
		return err
	}
	if tail != "" {
		if _, err := io.WriteString(out, tail); err != nil {
			return err
		}
	}
	return nil
}

// XMLString serializes n with a default Dumper and returns the fragment.
func (n *Node) XMLString() (string, error) {
	var sb strings.Builder
	d := Dumper{}
	if err := d.DumpNode(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// String implements fmt.Stringer. Unlike XMLString it cannot report a
// charset-conversion failure, so it escapes the affected text as-is
// instead; the stream layer logs stanzas through here.
func (n *Node) String() string {
	var sb strings.Builder
	d := Dumper{lenient: true}
	_ = d.DumpNode(&sb, n)
	return sb.String()
}
