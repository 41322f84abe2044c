package harness

import "math/rand/v2"

// OpKind distinguishes the three Priority API operations a Sequence
// can drive.
type OpKind int

const (
	// OpInsert requests inserting a fresh priority immediately after
	// the pool entry at Ref (modulo the pool's current size at replay
	// time).
	OpInsert OpKind = iota
	// OpDelete requests deleting the pool entry at Ref.
	OpDelete
	// OpCompare requests comparing the pool entries at Ref and Ref2.
	OpCompare
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "Insert"
	case OpDelete:
		return "Delete"
	case OpCompare:
		return "Compare"
	default:
		return "OpKind(?)"
	}
}

// Op is one operation in a generated sequence. Ref and Ref2 are not
// absolute identifiers: a replayer interprets them modulo the size of
// whatever pool of live priorities it is tracking at that point in the
// sequence, so a Sequence is reusable against pools that grow and
// shrink as deletes and inserts are replayed.
type Op struct {
	Kind OpKind
	Ref  int
	Ref2 int
}

// Mix weights the three operation kinds Sequence draws from. Weights
// need not sum to any particular total; Sequence normalizes them.
type Mix struct {
	InsertWeight  int
	DeleteWeight  int
	CompareWeight int
}

// DefaultMix is a 70/20/10 insert/delete/compare split, representative
// of typical order-maintenance workloads that mostly insert, churn
// some deletes, and occasionally just check order.
func DefaultMix() Mix {
	return Mix{InsertWeight: 70, DeleteWeight: 20, CompareWeight: 10}
}

// Sequence generates n random operations from a seed, using mix to
// weight operation kinds. The same (seed, n, mix) always produces the
// same sequence, for reproducible synthetic input.
func Sequence(seed int64, n int, mix Mix) []Op {
	total := mix.InsertWeight + mix.DeleteWeight + mix.CompareWeight
	if total <= 0 {
		mix = DefaultMix()
		total = mix.InsertWeight + mix.DeleteWeight + mix.CompareWeight
	}

	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	ops := make([]Op, 0, n)

	for i := 0; i < n; i++ {
		roll := r.IntN(total)
		var kind OpKind
		switch {
		case roll < mix.InsertWeight:
			kind = OpInsert
		case roll < mix.InsertWeight+mix.DeleteWeight:
			kind = OpDelete
		default:
			kind = OpCompare
		}

		op := Op{Kind: kind, Ref: r.Int()}
		if kind == OpCompare {
			op.Ref2 = r.Int()
		}
		ops = append(ops, op)
	}

	return ops
}
