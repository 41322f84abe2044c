package orderlist_test

import (
	"testing"

	"github.com/katalvlaran/ordermaint/orderlist"
	"github.com/katalvlaran/ordermaint/tag"
	"github.com/stretchr/testify/require"
)

func TestList_LinkAfterBase(t *testing.T) {
	l := orderlist.New()

	h := l.A.Allocate(tag.Tag(10))
	require.NoError(t, l.LinkAfter(l.Base, h))

	succ, err := l.Successor(l.Base)
	require.NoError(t, err)
	require.Equal(t, h, succ)

	pred, err := l.Predecessor(l.Base)
	require.NoError(t, err)
	require.Equal(t, h, pred, "list is cyclic: base's predecessor is the only other node")
}

func TestList_LinkAfterMiddle(t *testing.T) {
	l := orderlist.New()

	a := l.A.Allocate(tag.Tag(10))
	require.NoError(t, l.LinkAfter(l.Base, a))

	b := l.A.Allocate(tag.Tag(20))
	require.NoError(t, l.LinkAfter(a, b))

	// base -> a -> b -> base
	succ, _ := l.Successor(l.Base)
	require.Equal(t, a, succ)
	succ, _ = l.Successor(a)
	require.Equal(t, b, succ)
	succ, _ = l.Successor(b)
	require.Equal(t, l.Base, succ)

	pred, _ := l.Predecessor(b)
	require.Equal(t, a, pred)
}

func TestList_Unlink(t *testing.T) {
	l := orderlist.New()
	a := l.A.Allocate(tag.Tag(10))
	require.NoError(t, l.LinkAfter(l.Base, a))
	b := l.A.Allocate(tag.Tag(20))
	require.NoError(t, l.LinkAfter(a, b))

	require.NoError(t, l.Unlink(a))

	succ, _ := l.Successor(l.Base)
	require.Equal(t, b, succ, "base's successor should now be b directly")
	pred, _ := l.Predecessor(b)
	require.Equal(t, l.Base, pred)
}

func TestList_UnlinkBaseRefused(t *testing.T) {
	l := orderlist.New()
	require.ErrorIs(t, l.Unlink(l.Base), orderlist.ErrUnlinkBase)
}
