// Package constraint types: the Graph consumer interface, the Mode
// enumeration, functional options, sentinel errors, and shared validation.
package constraint

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors returned by the constraint engine.
var (
	// ErrNilGraph indicates that a nil Graph was passed to a public entry point.
	ErrNilGraph = errors.New("constraint: graph is nil")

	// ErrVertexNotFound indicates a queried vertex ID that is non-positive,
	// absent from the vertex set, or a graph with no vertices at all.
	ErrVertexNotFound = errors.New("constraint: vertex not found in graph")

	// ErrInvalidMode indicates a Mode value outside {ModeBoth, ModeOut, ModeIn}.
	ErrInvalidMode = errors.New("constraint: invalid mode")

	// ErrNegativeWeight indicates that a negative edge weight was read during
	// formula evaluation. The offending edge is attached via %w wrapping.
	ErrNegativeWeight = errors.New("constraint: negative edge weight encountered")
)

// Graph is the read-only adjacency surface the engine consumes.
// *core.Graph satisfies it; any snapshot with the same semantics will do.
//
// Contract:
//   - Neighbor queries return freshly allocated slices of unique IDs sorted
//     ascending (the engine filters them in place).
//   - A self-loop (v,v) makes v appear in its own neighbor sets.
//   - HasEdge is direction-sensitive for directed graphs and symmetric for
//     undirected ones; Weight follows the same orientation.
//   - Read operations must be side-effect-free and safe for concurrent reads.
type Graph interface {
	// VertexCount returns the number of vertices.
	VertexCount() int

	// HasVertex reports membership of id in the vertex set.
	HasVertex(id int64) bool

	// NeighborIDs returns the union of in- and out-neighbors of id.
	NeighborIDs(id int64) ([]int64, error)

	// OutNeighborIDs returns the targets of id's outgoing edges.
	OutNeighborIDs(id int64) ([]int64, error)

	// InNeighborIDs returns the sources of id's incoming edges.
	InNeighborIDs(id int64) ([]int64, error)

	// HasEdge reports whether the edge from→to exists.
	HasEdge(from, to int64) bool

	// Weighted reports whether edges carry meaningful weights.
	Weighted() bool

	// Weight returns the stored weight of the edge from→to.
	Weight(from, to int64) (float64, error)
}

// Mode selects which ties participate in a metric.
type Mode uint8

const (
	// ModeBoth treats the graph as symmetrized: the union of in- and
	// out-neighbors, with weight contributions summed from both directions.
	// A missing direction contributes weight 0.
	ModeBoth Mode = iota

	// ModeOut restricts attention to outgoing ties only.
	ModeOut

	// ModeIn restricts attention to incoming ties only.
	ModeIn
)

// String implements fmt.Stringer for diagnostics and test output.
func (m Mode) String() string {
	switch m {
	case ModeBoth:
		return "both"
	case ModeOut:
		return "out"
	case ModeIn:
		return "in"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Edge is a lightweight ordered vertex pair, accepted by
// DyadicConstraintEdge in place of two separate IDs.
type Edge struct {
	From int64
	To   int64
}

// Options configures a single metric evaluation.
type Options struct {
	// Mode selects which ties participate. Default: ModeBoth.
	Mode Mode
}

// Option is a functional option for metric calls.
type Option func(*Options)

// WithMode selects the tie direction regime for the call.
// Validity is checked at the public API boundary (ErrInvalidMode).
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// DefaultOptions returns the baseline configuration: ModeBoth.
func DefaultOptions() Options {
	return Options{Mode: ModeBoth}
}

// resolve applies the functional options and validates the shared
// preconditions of every public entry point, in fixed order:
//
//  1. g must be non-nil (ErrNilGraph).
//  2. Mode must be one of the three variants (ErrInvalidMode).
//  3. The graph must have at least one vertex, and every queried ID must be
//     a positive member of the vertex set (ErrVertexNotFound).
//
// Pure check: no arithmetic happens before it passes.
func resolve(g Graph, opts []Option, ids ...int64) (Options, error) {
	if g == nil {
		return Options{}, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Mode > ModeIn {
		return cfg, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(cfg.Mode))
	}

	if g.VertexCount() == 0 {
		return cfg, fmt.Errorf("%w: graph has no vertices", ErrVertexNotFound)
	}
	for _, id := range ids {
		if id <= 0 || !g.HasVertex(id) {
			return cfg, fmt.Errorf("%w: vertex %d", ErrVertexNotFound, id)
		}
	}

	return cfg, nil
}
