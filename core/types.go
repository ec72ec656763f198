// File: types.go
// Role: Graph struct, GraphOption configuration, sentinel errors, NewGraph.
// Concurrency: one sync.RWMutex guards vertices and both adjacency indexes.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates a vertex ID that is zero or negative.
	ErrBadVertexID = errors.New("core: vertex ID must be positive")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates a parallel edge was attempted; multi-edges are unsupported.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph, or a NaN/Inf weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// Vertex IDs are positive int64 values, not necessarily contiguous.
// Adjacency is kept in two indexes: out[from][to] and in[to][from], both
// holding the edge weight. For undirected graphs every edge is mirrored
// into all four buckets, so out and in coincide and every neighborhood
// query yields the same answer regardless of direction.
type Graph struct {
	mu sync.RWMutex // guards vertices, out, in, edgeCount

	// Configuration flags (immutable after NewGraph).
	directed   bool // one-way edges
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage.
	vertices  map[int64]struct{}          // vertex set
	out       map[int64]map[int64]float64 // from → to → weight
	in        map[int64]map[int64]float64 // to → from → weight
	edgeCount int                         // number of logical edges
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is undirected, unweighted, and loop-free.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[int64]struct{}),
		out:      make(map[int64]map[int64]float64),
		in:       make(map[int64]map[int64]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way From→To.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v, v, ...) rejects the operation with ErrLoopNotAllowed.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
