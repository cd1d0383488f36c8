package stanza_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat-go/stanza"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	ctx := context.Background()
	p := stanza.NewParser()

	t.Run("SimpleStanza", func(t *testing.T) {
		root, err := p.Parse(ctx, []byte("<message to='u@h'><body>hi</body></message>"))
		require.NoError(t, err)

		require.Equal(t, "message", root.Name())
		require.Equal(t, "u@h", root.Attribute("to"))
		require.True(t, root.HasChildren())
		require.Equal(t, "hi", root.LastChild().Inner())

		if pdebug.Enabled {
			pdebug.Dump(root)
		}
	})

	t.Run("NamespaceFromTokenizer", func(t *testing.T) {
		root, err := p.Parse(ctx, []byte("<message xmlns='jabber:client'><body>x</body></message>"))
		require.NoError(t, err)
		require.Equal(t, "message", root.Name())
		require.Equal(t, "jabber:client", root.Namespace())
		// the declaration itself is folded into the namespace, and
		// children inherit it through the tokenizer
		body := root.Child("body", "jabber:client")
		require.NotNil(t, body)
	})

	t.Run("InnerAndTailDistribution", func(t *testing.T) {
		root, err := p.Parse(ctx, []byte("<a>x<b/>t1<c/>t2</a>"))
		require.NoError(t, err)

		require.Equal(t, "x", root.Inner())
		kids := root.ChildNodes()
		require.Len(t, kids, 2)
		require.Equal(t, "t1", kids[0].Tail())
		require.Equal(t, "t2", kids[1].Tail())
	})

	t.Run("EntitiesDecoded", func(t *testing.T) {
		root, err := p.Parse(ctx, []byte("<body>a&amp;b</body>"))
		require.NoError(t, err)
		require.Equal(t, "a&b", root.Inner())
	})

	t.Run("PrefixedAttribute", func(t *testing.T) {
		root, err := p.Parse(ctx, []byte("<body xml:lang='en'/>"))
		require.NoError(t, err)
		require.Equal(t, "en", root.Attribute("xml:lang"))
	})

	t.Run("StopsAfterFirstTopLevelElement", func(t *testing.T) {
		root, err := p.Parse(ctx, []byte("<a/><b/>"))
		require.NoError(t, err)
		require.Equal(t, "a", root.Name())
	})

	t.Run("NoElement", func(t *testing.T) {
		_, err := p.Parse(ctx, []byte("   \n"))
		require.ErrorIs(t, err, stanza.ErrNoElement)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := p.Parse(ctx, []byte("<a><b></a>"))
		require.Error(t, err)
	})

	t.Run("UnclosedRoot", func(t *testing.T) {
		_, err := p.Parse(ctx, []byte("<a><b/>"))
		require.Error(t, err)
	})

	t.Run("WithTraceLogger", func(t *testing.T) {
		var buf strings.Builder
		tctx := stanza.WithTraceLogger(ctx, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := p.Parse(tctx, []byte("<message><body/></message>"))
		require.NoError(t, err)
		require.Contains(t, buf.String(), "open element")
		require.Contains(t, buf.String(), "close element")
	})
}

func TestXMLToDOMToXMLString(t *testing.T) {
	const input = "<message to='u@h'><body>hi&lt;3</body></message>"

	p := stanza.NewParser()
	root, err := p.Parse(context.Background(), []byte(input))
	if !assert.NoError(t, err, `Parse(...) succeeds`) {
		return
	}

	str, err := root.XMLString()
	if !assert.NoError(t, err, "XMLString(root) succeeds") {
		return
	}

	if !assert.Equal(t, input, str, "roundtrip works") {
		return
	}
}
