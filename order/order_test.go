package order_test

import (
	"testing"

	"github.com/katalvlaran/ordermaint/order"
	"github.com/stretchr/testify/require"
)

// TestForkJoin verifies a fork-join shape: insert two children after
// the same parent, then check all six pairwise comparisons.
func TestForkJoin(t *testing.T) {
	a := order.NewArena()
	p, err := a.InsertAfterBase()
	require.NoError(t, err)

	q, err := a.InsertAfter(p)
	require.NoError(t, err)

	r, err := a.InsertAfter(p)
	require.NoError(t, err)

	// Expected order: p < r < q  (r was inserted after p, then q was
	// already sitting right after p, so r lands between them).
	pairs := []struct {
		x, y *order.Priority
		want order.Ordering
	}{
		{p, q, order.Less},
		{p, r, order.Less},
		{r, q, order.Less},
		{q, p, order.Greater},
		{r, p, order.Greater},
		{q, r, order.Greater},
	}
	for _, pr := range pairs {
		ord, err := a.Compare(pr.x, pr.y)
		require.NoError(t, err)
		require.Equal(t, pr.want, ord)
	}
}

// TestMonotoneAppend repeatedly appends to the tail and checks the
// whole chain stays strictly increasing.
func TestMonotoneAppend(t *testing.T) {
	const n = 1000

	a := order.NewArena()
	prev, err := a.InsertAfterBase()
	require.NoError(t, err)

	priorities := []*order.Priority{prev}
	for i := 1; i < n; i++ {
		next, err := a.InsertAfter(prev)
		require.NoError(t, err)

		ord, err := a.Compare(prev, next)
		require.NoError(t, err)
		require.Equal(t, order.Less, ord)

		priorities = append(priorities, next)
		prev = next
	}

	for i := 0; i < len(priorities)-1; i++ {
		ord, err := a.Compare(priorities[i], priorities[i+1])
		require.NoError(t, err)
		require.Equal(t, order.Less, ord)
	}
}

// TestWorstCaseDensification repeatedly inserts after a single fixed
// priority, the pattern most likely to force relabeling.
func TestWorstCaseDensification(t *testing.T) {
	const n = 3000

	a := order.NewArena()
	p, err := a.InsertAfterBase()
	require.NoError(t, err)

	var last *order.Priority
	for i := 0; i < n; i++ {
		q, err := a.InsertAfter(p)
		require.NoError(t, err)

		ord, err := a.Compare(p, q)
		require.NoError(t, err)
		require.Equal(t, order.Less, ord)

		if last != nil {
			ord, err = a.Compare(q, last)
			require.NoError(t, err)
			require.Equal(t, order.Less, ord, "each new insert-after-p lands immediately after p, before the previous one")
		}
		last = q
	}
	require.Equal(t, n+1, a.Live())
}

// TestDeletionChurn interleaves inserts and deletes and checks the
// surviving order is unaffected.
func TestDeletionChurn(t *testing.T) {
	a := order.NewArena()

	prev, err := a.InsertAfterBase()
	require.NoError(t, err)
	all := []*order.Priority{prev}
	for i := 1; i < 100; i++ {
		next, err := a.InsertAfter(prev)
		require.NoError(t, err)
		all = append(all, next)
		prev = next
	}
	require.Equal(t, 100, a.Live())

	// Delete every other one.
	var survivors []*order.Priority
	for i, p := range all {
		if i%2 == 1 {
			require.NoError(t, a.Delete(p))
			continue
		}
		survivors = append(survivors, p)
	}
	require.Equal(t, 50, a.Live())

	// Insert 49 more, one between each adjacent pair of survivors.
	for i := 0; i < len(survivors)-1 && i < 50; i++ {
		_, err := a.InsertAfter(survivors[i])
		require.NoError(t, err)
	}

	// Order among survivors must be unchanged.
	for i := 0; i < len(survivors)-1; i++ {
		ord, err := a.Compare(survivors[i], survivors[i+1])
		require.NoError(t, err)
		require.Equal(t, order.Less, ord)
	}
}

// TestCrossArenaGuard checks that operations mixing priorities from
// two different arenas are rejected rather than silently compared.
func TestCrossArenaGuard(t *testing.T) {
	a1 := order.NewArena()
	a2 := order.NewArena()

	p1, err := a1.InsertAfterBase()
	require.NoError(t, err)
	p2, err := a2.InsertAfterBase()
	require.NoError(t, err)

	_, err = a1.Compare(p1, p2)
	require.ErrorIs(t, err, order.ErrDifferentArenas)

	_, err = a1.InsertAfter(p2)
	require.ErrorIs(t, err, order.ErrDifferentArenas)

	err = a1.Delete(p2)
	require.ErrorIs(t, err, order.ErrDifferentArenas)
}

func TestCompareIsAntisymmetric(t *testing.T) {
	a := order.NewArena()
	p, err := a.InsertAfterBase()
	require.NoError(t, err)
	q, err := a.InsertAfter(p)
	require.NoError(t, err)

	pq, err := a.Compare(p, q)
	require.NoError(t, err)
	qp, err := a.Compare(q, p)
	require.NoError(t, err)

	require.Equal(t, order.Less, pq)
	require.Equal(t, order.Greater, qp)
}

func TestDeleteIsHardErrorOnSecondCall(t *testing.T) {
	a := order.NewArena()
	p, err := a.InsertAfterBase()
	require.NoError(t, err)

	require.NoError(t, a.Delete(p))
	require.ErrorIs(t, a.Delete(p), order.ErrAlreadyDeleted)
}

func TestDropIsIdempotent(t *testing.T) {
	a := order.NewArena()
	p, err := a.InsertAfterBase()
	require.NoError(t, err)

	require.Equal(t, 1, a.Live())
	p.Drop()
	require.Equal(t, 0, a.Live())

	// A second Drop on the same priority must not panic or change Live.
	p.Drop()
	require.Equal(t, 0, a.Live())
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	a := order.NewArena()
	p, err := a.InsertAfterBase()
	require.NoError(t, err)
	q, err := a.InsertAfter(p)
	require.NoError(t, err)

	require.NoError(t, a.Delete(q))

	r, err := a.InsertAfter(p)
	require.NoError(t, err)
	ord, err := a.Compare(p, r)
	require.NoError(t, err)
	require.Equal(t, order.Less, ord)
}

func TestInsertAfterIncrementsLive(t *testing.T) {
	a := order.NewArena()
	p, err := a.InsertAfterBase()
	require.NoError(t, err)

	// Exhausting capacity would take 2^61 live nodes, more than a unit
	// test can allocate, so the failing path is not exercised here; this
	// test checks that a successful InsertAfter raises Live() by one.
	before := a.Live()
	_, err = a.InsertAfter(p)
	require.NoError(t, err)
	require.Equal(t, before+1, a.Live())
}
