// File: constraint.go
// Role: dyadic and aggregate constraint on top of the investment engine.
// Invariant: Constraint(i) == Σⱼ DyadicConstraint(i,j) bit-for-bit — the
// memo cache stores exact Investment outputs and both paths walk the same
// sorted neighbor order.
package constraint

// DyadicConstraint returns (p(i,j) + InvestmentSum(i,j))²: the constraint
// that alter j exerts on ego i under the chosen mode.
//
// When i and j are not connected under the mode — directly or through a
// shared intermediary — both terms vanish and the result is 0.
//
// Errors: ErrNilGraph / ErrInvalidMode / ErrVertexNotFound from validation;
// ErrNegativeWeight propagated from any weight read.
//
// Complexity: O(d²) weight reads, d = mode-selected degree.
func DyadicConstraint(g Graph, i, j int64, opts ...Option) (float64, error) {
	cfg, err := resolve(g, opts, i, j)
	if err != nil {
		return 0, err
	}

	return dyadic(g, g.Weighted(), i, j, cfg.Mode)
}

// DyadicConstraintEdge is DyadicConstraint accepting an ordered vertex pair
// in place of two separate IDs. Both forms agree bit-for-bit.
func DyadicConstraintEdge(g Graph, e Edge, opts ...Option) (float64, error) {
	return DyadicConstraint(g, e.From, e.To, opts...)
}

// Constraint returns C(i): the sum over i's mode-selected neighbors j of
// (p(i,j) + Σ_q p(i,q)·p(q,j))². A vertex with no mode-selected neighbors
// (isolated, or connected only via a self-loop) has constraint 0.
//
// Algorithm:
//  1. Validate graph, mode and vertex.
//  2. Enumerate N = mode-selected neighbors of i, self excluded.
//  3. Memoize p(i,j) for every j ∈ N in a call-scoped cache.
//  4. Sum (p(i,j) + indirect(i,j))² over j ∈ N, feeding the cache to the
//     indirect term so p(i,·) is never recomputed per target.
//
// The cache lives and dies inside this call — nothing is shared across
// calls or goroutines, so concurrent Constraint calls on one graph are safe
// as long as the Graph's reads are.
//
// Errors: as for DyadicConstraint.
//
// Complexity: O(d²) investment evaluations instead of the O(d³) a naive
// per-dyad recomputation would cost; d = mode-selected degree of i.
func Constraint(g Graph, i int64, opts ...Option) (float64, error) {
	// 1) Validate before any arithmetic.
	cfg, err := resolve(g, opts, i)
	if err != nil {
		return 0, err
	}
	weighted := g.Weighted()

	// 2) Mode-selected neighborhood, self excluded.
	nbrs, err := modeNeighborIDs(g, i, cfg.Mode)
	if err != nil {
		return 0, err
	}

	// 3) Call-scoped memo cache: j → p(i,j).
	inv := make(map[int64]float64, len(nbrs))
	for _, j := range nbrs {
		p, pErr := investment(g, weighted, i, j, cfg.Mode)
		if pErr != nil {
			return 0, pErr
		}
		inv[j] = p
	}

	// 4) Aggregate the squared dyadic terms through the cache.
	var total float64
	for _, j := range nbrs {
		ind, sErr := investmentSum(g, weighted, i, j, cfg.Mode, inv)
		if sErr != nil {
			return 0, sErr
		}
		d := inv[j] + ind
		total += d * d
	}

	return total, nil
}

// dyadic is the unvalidated engine behind DyadicConstraint.
func dyadic(g Graph, weighted bool, i, j int64, mode Mode) (float64, error) {
	p, err := investment(g, weighted, i, j, mode)
	if err != nil {
		return 0, err
	}

	ind, err := investmentSum(g, weighted, i, j, mode, nil)
	if err != nil {
		return 0, err
	}

	d := p + ind

	return d * d, nil
}
