package stanza

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"

	"github.com/lestrrat-go/stanza/encoding"
)

// Parser bridges a streaming XML tokenizer to the node tree. It is not
// an XML parser of its own: tokenization is done by encoding/xml, and
// the bridge only replays the tokens onto the tree-building contract
// (constructor, SetAttribute, AppendInner/AppendTail, AddChild) the way
// a stream decoder feeds stanzas. Comments, processing instructions,
// and directives are discarded.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a tree from buf and returns the root of the first
// top-level element. Input after that element is left unread. It
// returns ErrNoElement when the input holds no element at all, and a
// wrapped tokenizer error for malformed input.
func (p *Parser) Parse(ctx context.Context, buf []byte) (*Node, error) {
	return p.ParseReader(ctx, bytes.NewReader(buf))
}

// ParseReader is Parse reading from an io.Reader.
func (p *Parser) ParseReader(ctx context.Context, rdr io.Reader) (*Node, error) {
	tlog := getTraceLogFromContext(ctx)

	dec := xml.NewDecoder(rdr)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		e := encoding.Load(charset)
		if e == nil {
			return nil, &encoding.UnknownEncodingError{Name: charset}
		}
		return e.NewDecoder().Reader(input), nil
	}

	var root, cur *Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if root == nil {
				return nil, ErrNoElement
			}
			// EOF before the root closed; the decoder reports
			// unclosed tags itself, so this is unreachable in
			// practice, but guard anyway.
			return nil, fmt.Errorf("malformed input: %w", io.ErrUnexpectedEOF)
		}
		if err != nil {
			return nil, fmt.Errorf("malformed input: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if t.Name.Space != "" {
				// the same embedded-namespace form an expat-style
				// parser would deliver
				name = t.Name.Space + NSSep + t.Name.Local
			}
			var n *Node
			if cur == nil {
				n = New(name)
			} else {
				n = cur.CreateChild(name)
			}
			for _, attr := range t.Attr {
				if attr.Name.Space == NSAttr || (attr.Name.Space == "" && attr.Name.Local == NSAttr) {
					// namespace declarations were already folded
					// into Name.Space by the tokenizer
					continue
				}
				key := attr.Name.Local
				if attr.Name.Space != "" {
					key = attr.Name.Space + ":" + attr.Name.Local
				}
				n.SetAttribute(key, attr.Value)
			}
			tlog.InfoContext(ctx, "open element",
				slog.String("name", n.Name()),
				slog.String("xmlns", n.Namespace()),
			)
			if root == nil {
				root = n
			}
			cur = n
		case xml.EndElement:
			tlog.InfoContext(ctx, "close element", slog.String("name", cur.Name()))
			if cur == root {
				return root, nil
			}
			cur = cur.Parent()
		case xml.CharData:
			if cur == nil {
				// text between stanzas is not ours to keep
				continue
			}
			if cur.HasChildren() {
				cur.LastChild().AppendTail(string(t))
			} else {
				cur.AppendInner(string(t))
			}
		}
	}
}
