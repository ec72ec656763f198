// Package constraint implements Burt's network-constraint family of
// structural-holes metrics: proportional investment, two-step indirect
// investment, dyadic constraint, and aggregate constraint.
//
// Given a graph g, an ego i and a mode, the metrics are:
//
//	Investment      p(i,j) — the share of i's total tie strength directed at j:
//	                p(i,j) = s(i,j) / Σₖ s(i,k), k ranging over i's
//	                mode-selected neighbors (self excluded). s is the
//	                mode-selected tie strength: Both sums both directions
//	                (a missing direction contributes 0 — intentional,
//	                per the documented theory), Out uses w(i,·) only,
//	                In uses w(·,i) only. Unweighted graphs use edge
//	                presence (0/1) in place of weights.
//	InvestmentSum   Σ_q p(i,q)·p(q,j) over shared intermediaries q ∉ {i,j} —
//	                the strength of all length-2 paths i→q→j.
//	DyadicConstraint (p(i,j) + InvestmentSum(i,j))² — how much j closes
//	                off i's position.
//	Constraint      C(i) = Σⱼ DyadicConstraint(i,j) over i's mode-selected
//	                neighbors. High constraint = few structural holes.
//
// Mode:
//
//	ModeBoth (default) — symmetrized view: union of in- and out-neighbors,
//	                     weight contributions summed from both directions.
//	ModeOut            — outgoing ties only.
//	ModeIn             — incoming ties only.
//
// For an undirected graph all three modes coincide.
//
// Guarantees:
//
//   - 0 ≤ p(i,j) ≤ 1, and Σⱼ p(i,j) == 1 (within floating tolerance)
//     whenever i has at least one mode-selected neighbor, else the sum is 0.
//   - C(i) == Σⱼ DyadicConstraint(i,j) bit-for-bit: the memoized path inside
//     Constraint stores the exact Investment outputs and walks neighbors in
//     the same sorted order as the plain per-dyad path.
//   - Self-loops never contribute to any metric.
//   - All functions are pure: identical arguments on an unmutated graph
//     return bit-identical results; the graph is never written.
//
// Complexity (d = mode-selected degree):
//
//   - Investment, DyadicConstraint: O(d) direct-investment evaluations.
//   - Constraint: the per-call memo cache of p(i,·) values avoids
//     recomputing them for every target j, reducing the aggregate from
//     O(d³) worth of pairwise investments to O(d²).
//
// Errors (sentinel):
//
//	ErrNilGraph       if the provided graph is nil.
//	ErrVertexNotFound if a queried vertex is non-positive, absent, or the
//	                  graph has no vertices at all.
//	ErrInvalidMode    if the mode is outside {ModeBoth, ModeOut, ModeIn}.
//	ErrNegativeWeight if any weight read during evaluation is negative.
//	                  No clamping, defaulting, or silent correction is ever
//	                  performed — a negative investment weight has no valid
//	                  interpretation and would corrupt downstream aggregates.
//
// Example usage:
//
//	c, err := constraint.Constraint(g, 1, constraint.WithMode(constraint.ModeOut))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("constraint of 1: %.4f\n", c)
package constraint
