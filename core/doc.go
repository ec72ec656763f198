// Package core defines the central Graph type and provides thread-safe
// primitives for building and querying the networks that the metric
// packages (constraint, brokerage) consume.
//
// A Graph is a finite set of positive int64 vertex IDs (not necessarily
// contiguous) plus a directed-or-undirected, weighted-or-unweighted edge
// relation. All reads and writes go through a single sync.RWMutex, so a
// graph may be built from one goroutine and queried concurrently from many.
//
// Capability flags are fixed at construction time:
//
//	WithDirected(true) — edges are one-way From→To; otherwise mirrored.
//	WithWeighted()     — edges carry float64 weights; otherwise weight must be 0.
//	WithLoops()        — self-loops (v,v) are storable; otherwise rejected.
//
// Weight policy: AddEdge rejects NaN and ±Inf (ErrBadWeight) so that every
// stored weight is finite. Negative finite weights ARE storable — they have
// no valid interpretation in the metric formulas, and it is the metric
// packages' contract to detect and refuse them at read time rather than
// this container's job to pre-judge them.
//
// Determinism: Vertices, NeighborIDs, OutNeighborIDs and InNeighborIDs
// return freshly allocated slices sorted ascending, so iteration order is
// reproducible across runs.
//
// Errors:
//
//	ErrBadVertexID   - vertex ID is zero or negative.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound  - requested edge does not exist.
//	ErrEdgeExists    - parallel edge attempted (multi-edges unsupported).
//	ErrBadWeight     - non-zero weight on an unweighted graph, or NaN/Inf.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core
