package harness

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/ordermaint/order"
)

// maxPairwiseCheck caps how many random pairs (and as many random
// triples) CheckInvariants samples, so that a full O(n^2) cross-check
// does not dominate test time. Pairs are drawn at random for every n,
// so a small set is not guaranteed to have every pair checked.
const maxPairwiseCheck = 200

// CheckInvariants re-verifies that the live priorities a caller is
// currently tracking are strictly ordered by Compare (no two distinct
// priorities tie), that sampled pairs compare antisymmetrically, and
// that sampled triples are transitive. It does not walk the arena's
// list and does not check insertion locality. It operates purely
// through a's public Compare method, so
// it can be called from any package, including a consumer embedding
// this library.
func CheckInvariants(a *order.Arena, live []*order.Priority) error {
	n := len(live)
	if n < 2 {
		return nil
	}

	sorted := make([]*order.Priority, n)
	copy(sorted, live)

	var sortErr error
	sort.SliceStable(sorted, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		ord, err := a.Compare(sorted[i], sorted[j])
		if err != nil {
			sortErr = err
			return false
		}
		return ord == order.Less
	})
	if sortErr != nil {
		return fmt.Errorf("harness: comparing during sort: %w", sortErr)
	}

	// Strict order: once sorted, every
	// adjacent pair must compare strictly Less, never Equal or
	// Greater — a tie here would mean two distinct priorities share a
	// tag (invariant 6), and Greater would mean the sort itself is
	// inconsistent with Compare.
	for i := 0; i < n-1; i++ {
		ord, err := a.Compare(sorted[i], sorted[i+1])
		if err != nil {
			return fmt.Errorf("harness: comparing adjacent sorted pair %d: %w", i, err)
		}
		if ord != order.Less {
			return fmt.Errorf("harness: adjacent sorted pair %d is not strictly increasing (got %s)", i, ord)
		}
	}

	// Totality + antisymmetry, on randomly sampled pairs.
	r := rand.New(rand.NewPCG(uint64(n), uint64(n)*2+1))
	pairChecks := n * (n - 1) / 2
	if pairChecks > maxPairwiseCheck {
		pairChecks = maxPairwiseCheck
	}
	for c := 0; c < pairChecks; c++ {
		i := r.IntN(n)
		j := r.IntN(n)
		if i == j {
			continue
		}
		fwd, err := a.Compare(sorted[i], sorted[j])
		if err != nil {
			return fmt.Errorf("harness: comparing sampled pair (%d,%d): %w", i, j, err)
		}
		rev, err := a.Compare(sorted[j], sorted[i])
		if err != nil {
			return fmt.Errorf("harness: comparing sampled pair (%d,%d) reversed: %w", j, i, err)
		}
		if !isAntisymmetric(fwd, rev) {
			return fmt.Errorf("harness: Compare(%d,%d)=%s is not antisymmetric with Compare(%d,%d)=%s", i, j, fwd, j, i, rev)
		}
	}

	// Transitivity, sampled.
	tripleChecks := pairChecks
	for c := 0; c < tripleChecks; c++ {
		i, j, k := r.IntN(n), r.IntN(n), r.IntN(n)
		if i == j || j == k || i == k {
			continue
		}
		if i > j {
			i, j = j, i
		}
		if j > k {
			j, k = k, j
		}
		if i > j {
			i, j = j, i
		}

		ab, err := a.Compare(sorted[i], sorted[j])
		if err != nil {
			return fmt.Errorf("harness: comparing transitivity triple: %w", err)
		}
		bc, err := a.Compare(sorted[j], sorted[k])
		if err != nil {
			return fmt.Errorf("harness: comparing transitivity triple: %w", err)
		}
		ac, err := a.Compare(sorted[i], sorted[k])
		if err != nil {
			return fmt.Errorf("harness: comparing transitivity triple: %w", err)
		}
		if ab == order.Less && bc == order.Less && ac != order.Less {
			return fmt.Errorf("harness: transitivity violated: sorted[%d]<sorted[%d]<sorted[%d] but Compare(%d,%d)=%s", i, j, k, i, k, ac)
		}
	}

	return nil
}

func isAntisymmetric(fwd, rev order.Ordering) bool {
	switch fwd {
	case order.Less:
		return rev == order.Greater
	case order.Greater:
		return rev == order.Less
	default:
		return rev == order.Equal
	}
}
