package stress

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/tectonik/stressinv/geomath"
)

// ErrEigenFailed indicates that the symmetric eigen decomposition of a
// stress tensor did not converge.
var ErrEigenFailed = errors.New("stress: eigen decomposition failed")

// PrincipalStress holds the principal values and axes of a stress tensor.
// Values are ordered most compressive first (σ1 ≤ σ2 ≤ σ3 with compression
// negative); Axes[i] is the unit eigenvector for Values[i].
type PrincipalStress struct {
	Values [3]float64
	Axes   [3]geomath.Vec3
}

// PrincipalStresses decomposes a symmetric stress tensor into principal
// values and axes. Used by prediction and reporting paths; the inversion
// hot path never needs it.
func PrincipalStresses(sigma geomath.Mat3) (PrincipalStress, error) {
	sym := mat.NewSymDense(3, []float64{
		sigma[0][0], sigma[0][1], sigma[0][2],
		sigma[1][0], sigma[1][1], sigma[1][2],
		sigma[2][0], sigma[2][1], sigma[2][2],
	})

	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return PrincipalStress{}, ErrEigenFailed
	}

	var vals [3]float64
	es.Values(vals[:])

	var vecs mat.Dense
	es.VectorsTo(&vecs)

	var ps PrincipalStress
	ps.Values = vals
	for i := 0; i < 3; i++ {
		ps.Axes[i] = geomath.Vec3{
			X: vecs.At(0, i),
			Y: vecs.At(1, i),
			Z: vecs.At(2, i),
		}
	}

	return ps, nil
}
