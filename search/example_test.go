package search_test

import (
	"fmt"

	"github.com/katalvlaran/pressure/builder"
	"github.com/katalvlaran/pressure/search"
)

// Example solves the reference layout for one actor and for two.
func Example() {
	g, err := builder.ExampleGraph()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, err := search.NewProblem(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	single, err := p.Solve(30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dual, err := p.SolveDual(26, search.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(single.Value, dual.Value)
	// Output:
	// 1651 1707
}
