package search_test

import (
	"fmt"
	"math"

	"github.com/tectonik/stressinv/data"
	"github.com/tectonik/stressinv/search"
)

// ExampleGridDomain inverts a conjugate fault pair over a coarse orientation
// grid.
//
// Scenario:
//
//	Two conjugate faults strike North and dip 60° east and west — the
//	textbook normal-faulting geometry with σ1 vertical. A 2×2 grid over the
//	(φ, θ) axes of a StressSpace visits each candidate orientation and
//	collects the mean misfit; the grid node (φ=π/2, θ=−π/2) realizes the
//	vertical σ1.
//
// Complexity: O(grid nodes · data).
func ExampleGridDomain() {
	east := data.NewLine(1)
	east.Strike, east.Dip, east.DipDirection = 0, 60, "E"
	west := data.NewLine(2)
	west.Strike, west.Dip, west.DipDirection = 0, 60, "W"

	pair, err := data.NewRegistry().Build(data.TypeConjugateFaults, []data.Line{east, west})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	space, err := search.NewStressSpace(nil, []data.Data{pair})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	space.TrySetAxis(search.AxisPsi, 0)
	space.TrySetAxis(search.AxisRatio, 0.5)

	grid, err := search.NewGridDomain(space,
		search.Axis{Name: search.AxisPhi, Min: 0, Max: math.Pi / 2, Count: 2},
		search.Axis{Name: search.AxisTheta, Min: -math.Pi / 2, Max: 0, Count: 2},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	costs, err := grid.Run()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	best := 0
	for i, c := range costs {
		if c < costs[best] {
			best = i
		}
	}
	fmt.Printf("samples=%d\nbest node=%d\nbest cost=%.2f\n", len(costs), best, costs[best])
	// Output:
	// samples=4
	// best node=2
	// best cost=0.00
}
