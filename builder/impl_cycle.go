// File: impl_cycle.go — Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices 1..n; edges 1→2, …, (n-1)→n, n→1 in that order.
//   - On a directed graph this yields the directed ring 1→2→…→n→1.
//
// Complexity: O(n) vertices, O(n) edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/burt/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring 1—2—…—n—1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodCycle, int64(n), true)
	}
}
