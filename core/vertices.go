// File: vertices.go
// Role: Vertex lifecycle & queries: AddVertex / HasVertex / Vertices / VertexCount.
// Determinism: Vertices() returns IDs sorted ascending.
package core

import "sort"

// AddVertex inserts the vertex id into the graph.
// Adding an existing vertex is a no-op and returns nil.
//
// Errors:
//   - ErrBadVertexID if id ≤ 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64) error {
	if id <= 0 {
		return ErrBadVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id is a member of the vertex set.
// Non-positive IDs are never members.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	if id <= 0 {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns a snapshot of all vertex IDs sorted ascending.
// The returned slice is freshly allocated and safe to retain.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	g.mu.RLock()
	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// VertexCount returns the number of vertices currently in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
