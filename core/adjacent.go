// File: adjacent.go
// Role: Neighborhood queries: OutNeighborIDs / InNeighborIDs / NeighborIDs.
// Determinism: every query returns unique IDs sorted ascending.
package core

import "sort"

// OutNeighborIDs returns the unique IDs reachable by one outgoing edge from
// id, sorted ascending. A self-loop contributes id itself. For undirected
// graphs this coincides with InNeighborIDs and NeighborIDs.
//
// Errors:
//   - ErrBadVertexID if id ≤ 0.
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) where d = out-degree.
func (g *Graph) OutNeighborIDs(id int64) ([]int64, error) {
	return g.neighborIDs(id, true, false)
}

// InNeighborIDs returns the unique IDs with an edge pointing at id, sorted
// ascending. A self-loop contributes id itself.
//
// Errors:
//   - ErrBadVertexID if id ≤ 0.
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) where d = in-degree.
func (g *Graph) InNeighborIDs(id int64) ([]int64, error) {
	return g.neighborIDs(id, false, true)
}

// NeighborIDs returns the union of in- and out-neighbors of id, sorted
// ascending. A self-loop contributes id itself (once).
//
// Errors:
//   - ErrBadVertexID if id ≤ 0.
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) where d = total degree.
func (g *Graph) NeighborIDs(id int64) ([]int64, error) {
	return g.neighborIDs(id, true, true)
}

// neighborIDs collects the requested neighborhood under a single read lock.
func (g *Graph) neighborIDs(id int64, wantOut, wantIn bool) ([]int64, error) {
	if id <= 0 {
		return nil, ErrBadVertexID
	}

	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()

		return nil, ErrVertexNotFound
	}

	seen := make(map[int64]struct{})
	if wantOut {
		for to := range g.out[id] {
			seen[to] = struct{}{}
		}
	}
	if wantIn {
		for from := range g.in[id] {
			seen[from] = struct{}{}
		}
	}
	g.mu.RUnlock()

	ids := make([]int64, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}
