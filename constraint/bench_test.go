package constraint_test

import (
	"testing"

	"github.com/katalvlaran/burt/builder"
	"github.com/katalvlaran/burt/constraint"
	"github.com/katalvlaran/burt/core"
)

// benchGraph builds the dense worst case for the memo cache: a weighted
// complete graph where every vertex has n-1 alters.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g := core.NewGraph(core.WithWeighted())
	if err := builder.Build(g, builder.Complete(n),
		builder.WithWeightFn(func(from, to int64) float64 { return float64(from + to) })); err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkInvestment_Complete50(b *testing.B) {
	g := benchGraph(b, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := constraint.Investment(g, 1, 2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDyadicConstraint_Complete50(b *testing.B) {
	g := benchGraph(b, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := constraint.DyadicConstraint(g, 1, 2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConstraint_Complete50(b *testing.B) {
	g := benchGraph(b, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := constraint.Constraint(g, 1); err != nil {
			b.Fatal(err)
		}
	}
}
