// Package harness is the exported test collaborator: a uniform-random
// generator and a property-based generator of operation sequences,
// plus an invariant checker for the order-maintenance contract.
//
// Sequence produces a deterministic, seed-driven slice of Op values;
// CheckInvariants re-checks, against a live *order.Arena and the
// caller's current set of live priorities, that Compare orders them
// strictly with no ties, antisymmetrically and transitively (the last
// two on random samples). It does not walk the arena's list and does
// not check insertion locality. Neither function consumes package-internal state — both
// operate purely through order's public Priority API, so any consumer
// embedding this library can run the same checks against their own
// usage.
package harness
