// File: investment.go
// Role: proportional tie strength p(i,j) and its two-step extension.
// Determinism: neighbor slices arrive sorted ascending, so every summation
// runs in a fixed order and repeated calls return bit-identical floats.
package constraint

import "fmt"

// Investment returns p(i,j): the share of i's total tie strength, under the
// chosen mode, directed toward j.
//
// Rules (in evaluation order):
//   - Self-rule: Investment(g, i, i) is 0 unconditionally.
//   - Numerator: mode-selected combination of w(i,j) and w(j,i)
//     (Both: sum of both directions, missing direction counts 0).
//   - Denominator: the same combination summed over i's mode-selected
//     neighbors, self-loop excluded.
//   - Isolated-under-mode: denominator 0 ⇒ result 0.
//
// Unweighted graphs use edge presence (0/1) in place of weights.
//
// Errors: ErrNilGraph / ErrInvalidMode / ErrVertexNotFound from validation;
// ErrNegativeWeight (wrapping the offending edge) from weight reads.
//
// Complexity: O(d) weight reads, d = mode-selected degree of i.
func Investment(g Graph, i, j int64, opts ...Option) (float64, error) {
	cfg, err := resolve(g, opts, i, j)
	if err != nil {
		return 0, err
	}

	return investment(g, g.Weighted(), i, j, cfg.Mode)
}

// InvestmentSum returns Σ_q p(i,q)·p(q,j) over every mode-selected neighbor
// q of i with q ∉ {i, j} — the strength of all length-2 paths from i to j
// through a shared, mode-consistent intermediary.
//
// Errors: as for Investment.
//
// Complexity: O(d²) weight reads, d = mode-selected degree.
func InvestmentSum(g Graph, i, j int64, opts ...Option) (float64, error) {
	cfg, err := resolve(g, opts, i, j)
	if err != nil {
		return 0, err
	}

	return investmentSum(g, g.Weighted(), i, j, cfg.Mode, nil)
}

// investment is the unvalidated engine behind Investment. The weighted flag
// is resolved once per public call and threaded through, so the formula
// branch is chosen exactly once rather than per weight read.
func investment(g Graph, weighted bool, i, j int64, mode Mode) (float64, error) {
	// Self-ties are excluded from the formulas entirely.
	if i == j {
		return 0, nil
	}

	// Numerator: strength of the (i,j) tie under the mode.
	num, err := tieStrength(g, weighted, i, j, mode)
	if err != nil {
		return 0, err
	}

	// Denominator: total strength of i's mode-selected ties, self excluded.
	nbrs, err := modeNeighborIDs(g, i, mode)
	if err != nil {
		return 0, err
	}
	var denom float64
	for _, k := range nbrs {
		s, sErr := tieStrength(g, weighted, i, k, mode)
		if sErr != nil {
			return 0, sErr
		}
		denom += s
	}

	// Isolated under this mode: no investment anywhere.
	if denom == 0 {
		return 0, nil
	}

	return num / denom, nil
}

// investmentSum is the unvalidated engine behind InvestmentSum.
//
// cache, when non-nil, maps q → p(i,q) as previously computed by investment;
// Constraint supplies it so that p(i,·) is evaluated once per ego rather
// than once per (ego, target) pair. A nil cache means "compute everything".
// Both paths walk the same sorted neighbor order and the cache stores exact
// investment outputs, so memoized and plain results are bit-identical.
func investmentSum(g Graph, weighted bool, i, j int64, mode Mode, cache map[int64]float64) (float64, error) {
	nbrs, err := modeNeighborIDs(g, i, mode)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, q := range nbrs {
		// The intermediary must be distinct from both endpoints;
		// q == i is already excluded by modeNeighborIDs.
		if q == j {
			continue
		}

		piq, ok := cache[q]
		if !ok {
			if piq, err = investment(g, weighted, i, q, mode); err != nil {
				return 0, err
			}
		}

		pqj, err := investment(g, weighted, q, j, mode)
		if err != nil {
			return 0, err
		}

		total += piq * pqj
	}

	return total, nil
}

// modeNeighborIDs returns i's mode-selected neighbors with i itself removed
// (self-loops never participate). The slice is filtered in place: the Graph
// contract guarantees a fresh, ascending-sorted allocation per call.
func modeNeighborIDs(g Graph, i int64, mode Mode) ([]int64, error) {
	var (
		ids []int64
		err error
	)
	switch mode {
	case ModeOut:
		ids, err = g.OutNeighborIDs(i)
	case ModeIn:
		ids, err = g.InNeighborIDs(i)
	default: // ModeBoth
		ids, err = g.NeighborIDs(i)
	}
	if err != nil {
		return nil, fmt.Errorf("constraint: neighbors of %d: %w", i, err)
	}

	n := 0
	for _, v := range ids {
		if v != i {
			ids[n] = v
			n++
		}
	}

	return ids[:n], nil
}

// tieStrength returns the mode-selected strength s(i,k):
// Both = w(i,k)+w(k,i), Out = w(i,k), In = w(k,i); missing edges count 0.
func tieStrength(g Graph, weighted bool, i, k int64, mode Mode) (float64, error) {
	switch mode {
	case ModeOut:
		return directedStrength(g, weighted, i, k)
	case ModeIn:
		return directedStrength(g, weighted, k, i)
	default: // ModeBoth: sum of both orientations, missing direction is 0.
		out, err := directedStrength(g, weighted, i, k)
		if err != nil {
			return 0, err
		}
		in, err := directedStrength(g, weighted, k, i)
		if err != nil {
			return 0, err
		}

		return out + in, nil
	}
}

// directedStrength reads one oriented tie: 0 when absent, the weight when
// the graph is weighted, 1 for bare presence otherwise. A negative stored
// weight is refused on the spot — never clamped — naming the exact edge.
func directedStrength(g Graph, weighted bool, from, to int64) (float64, error) {
	if !g.HasEdge(from, to) {
		return 0, nil
	}
	if !weighted {
		return 1, nil
	}

	w, err := g.Weight(from, to)
	if err != nil {
		return 0, fmt.Errorf("constraint: weight of edge %d→%d: %w", from, to, err)
	}
	if w < 0 {
		return 0, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, from, to, w)
	}

	return w, nil
}
