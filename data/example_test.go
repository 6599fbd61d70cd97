package data_test

import (
	"fmt"

	"github.com/tectonik/stressinv/data"
	"github.com/tectonik/stressinv/stress"
)

// ExampleRegistry builds a datum from pre-tokenized file lines and scores a
// stress hypothesis against it.
//
// Scenario:
//
//	A conjugate fault pair striking North and dipping 60° east and west.
//	The pair itself fixes a principal-axis frame (σ1 vertical for this
//	geometry); scoring that very frame as the hypothesis yields a zero
//	misfit.
func ExampleRegistry() {
	east := data.NewLine(1)
	east.Strike, east.Dip, east.DipDirection = 0, 60, "E"
	west := data.NewLine(2)
	west.Strike, west.Dip, west.DipDirection = 0, 60, "W"

	pair, err := data.NewRegistry().Build(data.TypeConjugateFaults, []data.Line{east, west})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	eng := stress.NewEngine()
	if err := eng.SetHypotheticalStress(pair.(*data.ConjugateFaults).Orientation(), 0.4); err != nil {
		fmt.Println("error:", err)

		return
	}
	h, _ := data.HypothesisFromEngine(eng)

	cost, err := pair.Cost(h)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("type=%s\ncost=%.2f\n", pair.Type(), cost)
	// Output:
	// type=conjugate faults
	// cost=0.00
}
