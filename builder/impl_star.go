// File: impl_star.go — Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is vertex 1; leaves are 2..n, added in ascending order.
//   - Spokes are emitted hub → leaf. For directed graphs the reverse spoke
//     leaf → hub is also emitted to preserve spoke symmetry.
//   - Weight policy: edgeWeight (cfg.weightFn when weighted, else 0).
//
// Complexity: O(n) vertices, O(n-1) edges (undirected) or O(2n-2) (directed).
package builder

import (
	"fmt"

	"github.com/katalvlaran/burt/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHubID    = int64(1)
)

// Star returns a Constructor that builds a star topology with n vertices:
// hub 1 and leaves 2..n.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertex(starHubID); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", methodStar, starHubID, err)
		}

		var leaf int64
		for leaf = 2; leaf <= int64(n); leaf++ {
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodStar, leaf, err)
			}

			w := edgeWeight(g, cfg, starHubID, leaf)
			if err := g.AddEdge(starHubID, leaf, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", methodStar, starHubID, leaf, w, err)
			}

			// Directed graphs keep the spoke symmetric in both directions.
			if g.Directed() {
				if err := g.AddEdge(leaf, starHubID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", methodStar, leaf, starHubID, w, err)
				}
			}
		}

		return nil
	}
}
