// File: edges.go
// Role: Edge lifecycle & queries: AddEdge / RemoveEdge / HasEdge / Weight / EdgeCount.
// Concurrency: mutations under the write lock; queries under the read lock.
package core

import "math"

// AddEdge creates the edge from→to with the given weight, creating missing
// endpoint vertices on the fly: graphs are usually declared edge-first.
//
// Validation order:
//  1. Both IDs positive (ErrBadVertexID).
//  2. Loop policy (ErrLoopNotAllowed).
//  3. Weight policy: unweighted graphs require weight == 0, weighted graphs
//     require a finite value (ErrBadWeight). Negative finite weights are
//     accepted by this container; the metric packages refuse them at read
//     time with their own sentinel.
//  4. Uniqueness: a second edge between the same endpoints (either direction
//     for undirected graphs) is rejected (ErrEdgeExists).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int64, weight float64) error {
	// 1) ID domain.
	if from <= 0 || to <= 0 {
		return ErrBadVertexID
	}
	// 2) Loop policy.
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	// 3) Weight policy.
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 4) Uniqueness (mirror-aware for undirected graphs).
	if _, dup := g.out[from][to]; dup {
		return ErrEdgeExists
	}

	// Ensure endpoints exist.
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	// Link primary direction.
	link(g.out, from, to, weight)
	link(g.in, to, from, weight)

	// Mirror undirected non-loop edges so out and in coincide.
	if !g.directed && from != to {
		link(g.out, to, from, weight)
		link(g.in, from, to, weight)
	}

	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge from→to (and its undirected mirror).
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.out[from][to]; !ok {
		return ErrEdgeNotFound
	}

	unlink(g.out, from, to)
	unlink(g.in, to, from)

	if !g.directed && from != to {
		unlink(g.out, to, from)
		unlink(g.in, from, to)
	}

	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge from→to exists. For undirected graphs
// the relation is symmetric, so HasEdge(u, v) == HasEdge(v, u).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.out[from][to]

	return ok
}

// Weight returns the stored weight of the edge from→to.
// For unweighted graphs every stored edge has weight 0.
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) Weight(from, to int64) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.out[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// EdgeCount returns the number of logical edges (an undirected edge and its
// mirror count once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// link writes adj[a][b] = w, allocating the nested bucket on first use.
// Must be called under the write lock.
func link(adj map[int64]map[int64]float64, a, b int64, w float64) {
	if adj[a] == nil {
		adj[a] = make(map[int64]float64)
	}
	adj[a][b] = w
}

// unlink deletes adj[a][b] and prunes the bucket when it empties.
// Must be called under the write lock.
func unlink(adj map[int64]map[int64]float64, a, b int64) {
	if m := adj[a]; m != nil {
		delete(m, b)
		if len(m) == 0 {
			delete(adj, a)
		}
	}
}
