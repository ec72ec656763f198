// Package burt measures structural holes in social and organizational
// networks — Burt's network-constraint family of metrics plus the
// Gould–Fernandez brokerage census.
//
// 🚀 What is burt?
//
//	A small, thread-friendly, zero-dependency library that brings together:
//		• Core primitives: build directed/undirected, weighted/unweighted graphs
//		• Investment: proportional tie strength p(i,j) under Both / Out / In modes
//		• Constraint: per-dyad and aggregate network constraint C(i)
//		• Brokerage: coordinator / gatekeeper / representative / liaison / cosmopolitan census
//		• Builders: deterministic Star, Path, Cycle and Complete topologies
//
// ✨ Why choose burt?
//
//   - Numerically exact – the memoized constraint path reproduces the plain
//     dyadic formula bit-for-bit, and Σⱼ p(i,j) == 1 whenever i has neighbors
//   - Strict by design – negative weights, unknown vertices and bad modes are
//     refused with sentinel errors, never silently corrected
//   - Pure Go – no cgo, no hidden deps, no I/O
//   - Read-parallel – metrics never mutate the graph; concurrent queries over
//     distinct vertices are safe
//
// Everything is organized under four subpackages:
//
//	core/       — fundamental Graph type & thread-safe adjacency queries
//	builder/    — deterministic topology constructors for tests and demos
//	constraint/ — investment, dyadic constraint and aggregate constraint
//	brokerage/  — Gould–Fernandez triad role classification & census
//
// Quick ASCII example:
//
//	    2   3
//	     \ /
//	      1        a star: vertex 1 brokers every pair of leaves,
//	     / \       so Constraint(1) < Constraint(leaf).
//	    5   4
//
//	go get github.com/katalvlaran/burt
package burt
