// Package builder provides deterministic constructors for canonical
// topologies — Star, Path, Cycle, Complete — on top of core.Graph.
//
// Constructors are closures applied by Build, so one graph can be composed
// from several shapes. Vertex IDs are consecutive positive integers
// starting at 1, emitted in ascending order; edge emission order is fixed
// per constructor. There is no randomness anywhere: identical inputs always
// produce identical graphs, which is what the metric tests and examples
// rely on.
//
// Weight policy: if the target graph is weighted, each edge receives
// cfg.weightFn(from, to) (default: constant 1); unweighted graphs receive 0.
//
// Error policy:
//   - Only sentinel errors are returned; callers branch with errors.Is.
//   - Constructors never panic at runtime; panics are confined to option
//     constructors receiving nonsense (e.g. a nil weight function).
package builder
