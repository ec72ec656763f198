// File: impl_path.go — Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices 1..n in ascending order; edges i → i+1 in ascending order.
//   - Directed graphs get the forward chain only.
//
// Complexity: O(n) vertices, O(n-1) edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/burt/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path 1—2—…—n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, int64(n), false)
	}
}

// chain emits vertices 1..n and the forward edges i→i+1; when closed, it
// also emits n→1. Shared by Path and Cycle.
func chain(g *core.Graph, cfg config, method string, n int64, closed bool) error {
	var v int64
	for v = 1; v <= n; v++ {
		if err := g.AddVertex(v); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, v, err)
		}
	}

	for v = 1; v < n; v++ {
		w := edgeWeight(g, cfg, v, v+1)
		if err := g.AddEdge(v, v+1, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, v, v+1, w, err)
		}
	}

	if closed {
		w := edgeWeight(g, cfg, n, 1)
		if err := g.AddEdge(n, 1, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, n, 1, w, err)
		}
	}

	return nil
}
