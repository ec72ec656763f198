// File: brokerage.go
// Role: role classification, group-assignment validation and the census.
// Determinism: Census walks vertices and neighbor slices in the sorted
// order the Graph contract guarantees; NormalizeGroups numbers labels in
// first-occurrence order.
package brokerage

import "fmt"

// Classify returns the brokerage role of an ego with group label ego,
// brokering the two-path in→ego→out, where in and out are the labels of the
// in- and out-neighbor. Rules are checked in the documented tie-break
// order; the first match wins.
//
// Labels only need equality comparison, hence the bare comparable bound.
func Classify[L comparable](ego, in, out L) Role {
	switch {
	case ego == in && ego == out:
		return RoleCoordinator
	case ego == out: // ego != in here, coordinator already matched
		return RoleGatekeeper
	case ego == in: // ego != out here
		return RoleRepresentative
	case in == out: // ego differs from both here
		return RoleLiaison
	default:
		return RoleCosmopolitan
	}
}

// Census classifies every (in-neighbor, out-neighbor) pair around every
// vertex and returns the per-ego role tallies.
//
// groups must assign a label to every vertex in g (ErrBadGroups otherwise);
// extra keys are ignored. For each ego, the ego itself is excluded from
// both neighbor sets (so self-loops never produce a two-path) and pairs
// whose endpoints coincide are skipped — a reciprocated dyad is not a triad.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrBadGroups (wrapping the first uncovered vertex) if the assignment
//     is incomplete.
//
// Complexity: O(Σᵥ din(v)·dout(v)) classifications.
func Census[L comparable](g Graph, groups map[int64]L) (map[int64]Profile, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()

	// Validate coverage before any tallying.
	for _, v := range vertices {
		if _, ok := groups[v]; !ok {
			return nil, fmt.Errorf("%w: no label for vertex %d", ErrBadGroups, v)
		}
	}

	result := make(map[int64]Profile, len(vertices))
	for _, ego := range vertices {
		ins, err := g.InNeighborIDs(ego)
		if err != nil {
			return nil, fmt.Errorf("brokerage: in-neighbors of %d: %w", ego, err)
		}
		outs, err := g.OutNeighborIDs(ego)
		if err != nil {
			return nil, fmt.Errorf("brokerage: out-neighbors of %d: %w", ego, err)
		}

		var p Profile
		for _, a := range ins {
			if a == ego { // self-loop
				continue
			}
			for _, b := range outs {
				if b == ego || b == a {
					continue
				}
				p.add(Classify(groups[ego], groups[a], groups[b]))
			}
		}
		result[ego] = p
	}

	return result, nil
}

// GroupsFromSlice adapts an array-shaped group assignment — one label per
// vertex, aligned with g.Vertices() ascending order — into the map shape
// Census consumes.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrBadGroups if len(labels) != g.VertexCount().
func GroupsFromSlice[L comparable](g Graph, labels []L) (map[int64]L, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(labels) != g.VertexCount() {
		return nil, fmt.Errorf("%w: %d labels for %d vertices", ErrBadGroups, len(labels), g.VertexCount())
	}

	vertices := g.Vertices()
	groups := make(map[int64]L, len(labels))
	for idx, v := range vertices {
		groups[v] = labels[idx]
	}

	return groups, nil
}

// NormalizeGroups maps arbitrary labels to dense integers, numbered from 0
// in first-occurrence order. Two equal input sequences always produce the
// same output, which keeps downstream aggregations reproducible.
func NormalizeGroups[L comparable](labels []L) []int {
	ids := make(map[L]int, len(labels))
	out := make([]int, len(labels))
	for idx, l := range labels {
		id, ok := ids[l]
		if !ok {
			id = len(ids)
			ids[l] = id
		}
		out[idx] = id
	}

	return out
}
