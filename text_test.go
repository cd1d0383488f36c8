package stanza_test

import (
	"testing"

	"github.com/lestrrat-go/stanza"
	"github.com/stretchr/testify/require"
)

func TestTextAccumulation(t *testing.T) {
	t.Run("AppendInnerEqualsSetInner", func(t *testing.T) {
		a := stanza.New("body")
		a.AppendInner("ab")
		a.AppendInner("cd")

		b := stanza.New("body")
		b.SetInner("abcd")

		require.Equal(t, b.Inner(), a.Inner(), "fragmented delivery equals one-shot delivery")
	})

	t.Run("AppendTailEqualsSetTail", func(t *testing.T) {
		a := stanza.New("body")
		a.AppendTail("ab")
		a.AppendTail("cd")

		b := stanza.New("body")
		b.SetTail("abcd")

		require.Equal(t, b.Tail(), a.Tail())
	})

	t.Run("SetReplaces", func(t *testing.T) {
		n := stanza.New("body")
		n.AppendInner("old")
		n.SetInner("new")
		require.Equal(t, "new", n.Inner())

		n.AppendTail("old")
		n.SetTail("new")
		require.Equal(t, "new", n.Tail())
	})

	t.Run("NoNormalizationBetweenFragments", func(t *testing.T) {
		n := stanza.New("body")
		n.AppendInner("a ")
		n.AppendInner(" b")
		require.Equal(t, "a  b", n.Inner())
	})
}
