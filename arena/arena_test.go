package arena_test

import (
	"testing"

	"github.com/katalvlaran/ordermaint/arena"
	"github.com/katalvlaran/ordermaint/tag"
	"github.com/stretchr/testify/require"
)

func TestArena_AllocateGet(t *testing.T) {
	a := arena.New()
	h := a.Allocate(tag.Tag(42))

	n, err := a.Get(h)
	require.NoError(t, err)
	require.Equal(t, tag.Tag(42), n.Tag)
	require.Equal(t, 1, a.Live())
}

func TestArena_FreeThenStaleAccess(t *testing.T) {
	a := arena.New()
	h := a.Allocate(tag.Tag(1))

	require.NoError(t, a.Free(h))
	require.Equal(t, 0, a.Live())

	_, err := a.Get(h)
	require.ErrorIs(t, err, arena.ErrStaleHandle)

	// Freeing an already-freed handle is also rejected.
	require.ErrorIs(t, a.Free(h), arena.ErrStaleHandle)
}

func TestArena_SlotReuseBumpsGeneration(t *testing.T) {
	a := arena.New()
	h1 := a.Allocate(tag.Tag(1))
	require.NoError(t, a.Free(h1))

	h2 := a.Allocate(tag.Tag(2))

	// The freed slot is recycled...
	n2, err := a.Get(h2)
	require.NoError(t, err)
	require.Equal(t, tag.Tag(2), n2.Tag)

	// ...but the old handle must not resolve to the new occupant.
	_, err = a.Get(h1)
	require.ErrorIs(t, err, arena.ErrStaleHandle)
}

func TestArena_GetUnknownHandle(t *testing.T) {
	a := arena.New()
	_, err := a.Get(arena.Handle{})
	require.ErrorIs(t, err, arena.ErrStaleHandle)
}

func TestArena_MutateThroughPointer(t *testing.T) {
	a := arena.New()
	h1 := a.Allocate(tag.Tag(10))
	h2 := a.Allocate(tag.Tag(20))

	n1, err := a.Get(h1)
	require.NoError(t, err)
	n1.Next = h2

	n1Again, err := a.Get(h1)
	require.NoError(t, err)
	require.Equal(t, h2, n1Again.Next)
}
