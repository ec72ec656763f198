// File: api.go
// Role: Build entry point, builder configuration, functional options.
// Determinism: options are applied left-to-right; the default weight
// function is the constant 1.
package builder

import "github.com/katalvlaran/burt/core"

// Constructor populates g with one topology under the resolved config.
// Constructors are returned by Star, Path, Cycle and Complete, and applied
// by Build.
type Constructor func(g *core.Graph, cfg config) error

// config carries resolved builder settings down to constructors.
type config struct {
	// weightFn decides the weight of each emitted edge when the target
	// graph is weighted; ignored (weight 0) otherwise.
	weightFn func(from, to int64) float64
}

// Option adjusts the builder configuration.
type Option func(*config)

// WithWeightFn sets a per-edge weight function. Panics on nil — an option
// constructor receiving nonsense is a programming error, not a runtime one.
func WithWeightFn(fn func(from, to int64) float64) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// WithConstantWeight makes every emitted edge carry weight w.
func WithConstantWeight(w float64) Option {
	return func(c *config) { c.weightFn = func(int64, int64) float64 { return w } }
}

// defaultConfig returns the baseline configuration: constant weight 1.
func defaultConfig() config {
	return config{weightFn: func(int64, int64) float64 { return 1 }}
}

// Build resolves options and applies the constructor to g.
//
// Errors:
//   - ErrNilGraph / ErrNilConstructor on nil inputs.
//   - Sentinels from the constructor itself (e.g. ErrTooFewVertices),
//     wrapped with the constructor's method tag.
func Build(g *core.Graph, build Constructor, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	if build == nil {
		return ErrNilConstructor
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return build(g, cfg)
}

// edgeWeight applies the weight policy: cfg.weightFn for weighted graphs,
// 0 otherwise (unweighted cores reject any other value).
func edgeWeight(g *core.Graph, cfg config, from, to int64) float64 {
	if g.Weighted() {
		return cfg.weightFn(from, to)
	}

	return 0
}
