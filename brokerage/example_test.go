package brokerage_test

import (
	"fmt"

	"github.com/katalvlaran/burt/brokerage"
	"github.com/katalvlaran/burt/core"
)

// ExampleCensus runs the census on a tiny org chart: engineer 2 carries
// flow from a fellow engineer to sales, acting as a representative.
func ExampleCensus() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge(1, 2, 0) // eng → eng
	_ = g.AddEdge(2, 3, 0) // eng → sales

	groups := map[int64]string{1: "eng", 2: "eng", 3: "sales"}
	profiles, err := brokerage.Census(g, groups)
	if err != nil {
		fmt.Println("census:", err)
		return
	}

	p := profiles[2]
	fmt.Printf("vertex 2: %s ×%d (total %d)\n",
		brokerage.RoleRepresentative, p.Representative, p.Total())
	// Output:
	// vertex 2: representative ×1 (total 1)
}

// ExampleClassify spells out the five roles on plain string labels.
func ExampleClassify() {
	fmt.Println(brokerage.Classify("eng", "eng", "eng"))
	fmt.Println(brokerage.Classify("eng", "sales", "eng"))
	fmt.Println(brokerage.Classify("eng", "eng", "sales"))
	fmt.Println(brokerage.Classify("legal", "eng", "eng"))
	fmt.Println(brokerage.Classify("legal", "eng", "sales"))
	// Output:
	// coordinator
	// gatekeeper
	// representative
	// liaison
	// cosmopolitan
}
