package search_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tectonik/stressinv/data"
	"github.com/tectonik/stressinv/geomath"
	"github.com/tectonik/stressinv/search"
)

// distanceEval scores a hypothesis by its rotation distance to a target
// frame plus the shape-ratio error, so the landscape around the optimum is
// exactly known.
type distanceEval struct {
	rot geomath.Mat3
	r   float64
}

func (d distanceEval) Evaluate(rot geomath.Mat3, ratio float64) (float64, error) {
	return data.MinRotationAngle(rot.Mul(d.rot.Transpose())) + math.Abs(ratio-d.r), nil
}

func TestFibonacciSearch_RefinesRoughSolution(t *testing.T) {
	target := distanceEval{rot: geomath.Identity(), r: 0.5}

	tilt, err := geomath.RotationFromAxisAngle(geomath.Vec3{Z: 1}, 0.05)
	require.NoError(t, err)
	rough := search.Solution{Rot: geomath.Identity().Mul(tilt.Transpose()), R: 0.4}

	roughCost, err := target.Evaluate(rough.Rot, rough.R)
	require.NoError(t, err)
	require.InDelta(t, 0.15, roughCost, 1e-9)

	best, err := search.FibonacciSearch{
		RatioHalfInterval: 0.1,
		DeltaRatio:        0.05,
	}.Run(target, rough)
	require.NoError(t, err)

	require.Less(t, best.Cost, roughCost)
	require.Less(t, best.Cost, 0.05, "lattice must land near the optimum")
	require.InDelta(t, 0.5, best.R, 1e-12, "ratio sweep reaches the target value")
	require.True(t, best.Rot.IsRotation())
}

func TestFibonacciSearch_RoughAlreadyOptimal(t *testing.T) {
	target := distanceEval{rot: geomath.Identity(), r: 0.5}
	rough := search.Solution{Rot: geomath.Identity(), R: 0.5}

	best, err := search.FibonacciSearch{NodesPerHemisphere: 8}.Run(target, rough)
	require.NoError(t, err)
	require.InDelta(t, 0, best.Cost, 1e-12)
	require.Equal(t, rough.Rot, best.Rot, "the null rotation is swept")
	require.InDelta(t, 0.5, best.R, 1e-12)
}

func TestFibonacciSearch_Deterministic(t *testing.T) {
	target := distanceEval{rot: search.OrientationTensor(0.3, 0.2, 0.1), r: 0.7}
	rough := search.Solution{Rot: geomath.Identity(), R: 0.5}
	cfg := search.FibonacciSearch{NodesPerHemisphere: 16}

	a, err := cfg.Run(target, rough)
	require.NoError(t, err)
	b, err := cfg.Run(target, rough)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestFibonacciSearch_WithStressSpace(t *testing.T) {
	cf := conjugatePair(t, 60)
	space, err := search.NewStressSpace(nil, []data.Data{cf})
	require.NoError(t, err)

	tilt, err := geomath.RotationFromAxisAngle(geomath.Vec3{X: 1}, 0.04)
	require.NoError(t, err)
	rough := search.Solution{Rot: cf.Orientation().Mul(tilt.Transpose()), R: 0.5}

	roughCost, err := space.Evaluate(rough.Rot, rough.R)
	require.NoError(t, err)

	best, err := search.FibonacciSearch{NodesPerHemisphere: 32}.Run(space, rough)
	require.NoError(t, err)
	require.LessOrEqual(t, best.Cost, roughCost, "rough itself is a candidate")
	require.GreaterOrEqual(t, best.R, 0.0)
	require.LessOrEqual(t, best.R, 1.0, "ratio sweep stays inside [0,1]")
}

func TestFibonacciSearch_Validation(t *testing.T) {
	target := distanceEval{rot: geomath.Identity(), r: 0.5}

	_, err := search.FibonacciSearch{DeltaRotAngle: -0.01}.Run(target, search.Solution{Rot: geomath.Identity(), R: 0.5})
	require.ErrorIs(t, err, search.ErrSearchParams)
}

func TestFibonacciSearch_EvaluatorErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	ev := evalFunc(func(geomath.Mat3, float64) (float64, error) { return 0, boom })

	_, err := search.FibonacciSearch{NodesPerHemisphere: 2}.Run(ev, search.Solution{Rot: geomath.Identity(), R: 0.5})
	require.ErrorIs(t, err, boom)
}

// evalFunc adapts a function to the Evaluator interface.
type evalFunc func(rot geomath.Mat3, ratio float64) (float64, error)

func (f evalFunc) Evaluate(rot geomath.Mat3, ratio float64) (float64, error) { return f(rot, ratio) }
