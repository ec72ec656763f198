// File: impl_complete.go — Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices 1..n; one edge per unordered pair {i,j}, i < j, emitted in
//     lexicographic order. Directed graphs additionally get the reverse
//     edge j → i, keeping every pair mutually connected.
//
// Complexity: O(n) vertices, O(n²) edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/burt/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete graph K(n).
// Complete(3) on an undirected weighted graph is the canonical triangle
// used throughout the constraint tests.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		var i, j int64
		for i = 1; i <= int64(n); i++ {
			if err := g.AddVertex(i); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodComplete, i, err)
			}
		}

		for i = 1; i <= int64(n); i++ {
			for j = i + 1; j <= int64(n); j++ {
				w := edgeWeight(g, cfg, i, j)
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", methodComplete, i, j, w, err)
				}
				if g.Directed() {
					if err := g.AddEdge(j, i, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", methodComplete, j, i, w, err)
					}
				}
			}
		}

		return nil
	}
}
