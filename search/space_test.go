package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tectonik/stressinv/data"
	"github.com/tectonik/stressinv/geomath"
	"github.com/tectonik/stressinv/search"
	"github.com/tectonik/stressinv/stress"
)

// conjugatePair builds an initialized conjugate-faults datum from two planes
// striking North and dipping east/west at the given angle.
func conjugatePair(t *testing.T, dip float64) *data.ConjugateFaults {
	t.Helper()
	east := data.NewLine(1)
	east.Strike, east.Dip, east.DipDirection = 0, dip, "E"
	west := data.NewLine(2)
	west.Strike, west.Dip, west.DipDirection = 0, dip, "W"

	cf := data.NewConjugateFaults()
	require.NoError(t, cf.Initialize([]data.Line{east, west}))

	return cf
}

func TestOrientationTensor(t *testing.T) {
	require.Equal(t, geomath.Identity(), search.OrientationTensor(0, 0, 0))

	for _, angles := range [][3]float64{
		{0.3, 0, 0}, {0, 0.7, 0}, {0, 0, 1.2},
		{0.5, -0.9, 2.1}, {-2.8, 1.5, -0.4}, {math.Pi, math.Pi / 2, math.Pi / 4},
	} {
		m := search.OrientationTensor(angles[0], angles[1], angles[2])
		require.True(t, m.IsRotation(), "angles %v", angles)
	}

	// σ1 row realizes the (phi, theta) direction directly.
	m := search.OrientationTensor(0.4, 0.6, 0.9)
	require.InDelta(t, math.Cos(0.4)*math.Cos(0.6), m.Row(0).X, 1e-12)
	require.InDelta(t, math.Sin(0.4)*math.Cos(0.6), m.Row(0).Y, 1e-12)
	require.InDelta(t, -math.Sin(0.6), m.Row(0).Z, 1e-12)
}

func TestStressSpace_Axes(t *testing.T) {
	s, err := search.NewStressSpace(nil, []data.Data{conjugatePair(t, 60)})
	require.NoError(t, err)

	for _, name := range []string{"psi", "theta", "phi", "R"} {
		require.True(t, s.HasAxis(name))
		require.True(t, s.TrySetAxis(name, 0.1))
	}
	require.False(t, s.HasAxis("rake"))
	require.False(t, s.TrySetAxis("rake", 0.1))
}

func TestStressSpace_NoData(t *testing.T) {
	_, err := search.NewStressSpace(nil, nil)
	require.ErrorIs(t, err, search.ErrNoData)
}

func TestStressSpace_CostThroughAxes(t *testing.T) {
	// φ=π/2, θ=−π/2, ψ=0 puts σ1 vertical, σ3 E-W and σ2 N-S: the exact
	// frame of the 60°-dipping conjugate pair, so the mean misfit is zero.
	cf := conjugatePair(t, 60)
	s, err := search.NewStressSpace(nil, []data.Data{cf})
	require.NoError(t, err)

	require.True(t, s.TrySetAxis(search.AxisPhi, math.Pi/2))
	require.True(t, s.TrySetAxis(search.AxisTheta, -math.Pi/2))
	require.True(t, s.TrySetAxis(search.AxisPsi, 0))
	require.True(t, s.TrySetAxis(search.AxisRatio, 0.5))

	c, err := s.Cost()
	require.NoError(t, err)
	require.InDelta(t, 0, c, 1e-9)

	rot, ok := s.Engine().Orientation()
	require.True(t, ok)
	require.InDelta(t, 0, rot.Row(0).AxialAngleTo(geomath.Vec3{Z: 1}), 1e-9)
}

func TestStressSpace_UnweightedMean(t *testing.T) {
	// Two copies of the same pair, one carrying a large weight: the mean
	// must ignore it. Both data sit 0.2 rad from the hypothesis.
	a, b := conjugatePair(t, 60), conjugatePair(t, 60)
	b.SetWeight(5)

	s, err := search.NewStressSpace(nil, []data.Data{a, b})
	require.NoError(t, err)

	tilt, err := geomath.RotationFromAxisAngle(geomath.Vec3{X: 1, Y: 1}, 0.2)
	require.NoError(t, err)

	c, err := s.Evaluate(tilt.Mul(a.Orientation()), 0.5)
	require.NoError(t, err)
	require.InDelta(t, 0.2, c, 1e-9)
}

func TestStressSpace_InactiveDataSkipped(t *testing.T) {
	near, far := conjugatePair(t, 60), conjugatePair(t, 30)
	far.SetActive(false)

	s, err := search.NewStressSpace(nil, []data.Data{near, far})
	require.NoError(t, err)

	c, err := s.Evaluate(near.Orientation(), 0.5)
	require.NoError(t, err)
	require.InDelta(t, 0, c, 1e-9, "the deactivated pair must not contribute")

	near.SetActive(false)
	_, err = s.Evaluate(near.Orientation(), 0.5)
	require.ErrorIs(t, err, search.ErrNoActiveData)
}

func TestStressSpace_ShapeRatioValidatedAtCost(t *testing.T) {
	s, err := search.NewStressSpace(nil, []data.Data{conjugatePair(t, 60)})
	require.NoError(t, err)

	require.True(t, s.TrySetAxis(search.AxisRatio, 1.5), "writes are unvalidated")
	_, err = s.Cost()
	require.ErrorIs(t, err, stress.ErrShapeRatioRange)
}

func TestStressSpace_DataErrorsPropagate(t *testing.T) {
	cf := conjugatePair(t, 60)
	cf.SetProblem(data.Kinematic)

	s, err := search.NewStressSpace(nil, []data.Data{cf})
	require.NoError(t, err)

	_, err = s.Evaluate(cf.Orientation(), 0.5)
	require.ErrorIs(t, err, data.ErrUnsupportedProblemType)
}
