package geomath

import (
	"errors"
	"math"
)

// ErrNotOrthonormal is returned when three basis vectors do not form a
// right-handed orthonormal system (proper rotation, det = +1).
var ErrNotOrthonormal = errors.New("geomath: basis is not right-handed orthonormal")

// Mat3 is a 3×3 row-major matrix. When used as a rotation tensor, its rows
// are three mutually orthonormal unit vectors forming a right-handed basis;
// multiplying a vector expressed in S yields its coordinates in that basis.
type Mat3 [3][3]float64

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Row returns row i of m as a Vec3. i must be 0, 1 or 2.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m[i][0], m[i][1], m[i][2]}
}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}

	return out
}

// Transpose returns mᵀ. For a rotation tensor this is its inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Trace returns the sum of the diagonal elements.
func (m Mat3) Trace() float64 {
	return m[0][0] + m[1][1] + m[2][2]
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsRotation reports whether m is a proper rotation tensor: orthonormal rows
// within OrthoEps and det(m) = +1 within OrthoEps.
func (m Mat3) IsRotation() bool {
	for i := 0; i < 3; i++ {
		ri := m.Row(i)
		if math.Abs(ri.Norm()-1) > OrthoEps {
			return false
		}
		for j := i + 1; j < 3; j++ {
			if math.Abs(ri.Dot(m.Row(j))) > OrthoEps {
				return false
			}
		}
	}

	return math.Abs(m.Det()-1) <= OrthoEps
}

// RotationFromBasis builds a rotation tensor whose rows are (e1, e2, e3).
// Returns ErrNotOrthonormal unless the three vectors form a right-handed
// orthonormal basis within OrthoEps.
func RotationFromBasis(e1, e2, e3 Vec3) (Mat3, error) {
	m := Mat3{
		{e1.X, e1.Y, e1.Z},
		{e2.X, e2.Y, e2.Z},
		{e3.X, e3.Y, e3.Z},
	}
	if !m.IsRotation() {
		return Mat3{}, ErrNotOrthonormal
	}

	return m, nil
}

// RotationFromAxisAngle builds the proper rotation tensor for a rotation of
// angle radians about axis (Rodrigues formula). The axis is normalized
// internally; a zero axis yields ErrZeroVector.
func RotationFromAxisAngle(axis Vec3, angle float64) (Mat3, error) {
	n, err := axis.Normalize()
	if err != nil {
		return Mat3{}, err
	}

	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c

	return Mat3{
		{c + n.X*n.X*t, n.X*n.Y*t - n.Z*s, n.X*n.Z*t + n.Y*s},
		{n.Y*n.X*t + n.Z*s, c + n.Y*n.Y*t, n.Y*n.Z*t - n.X*s},
		{n.Z*n.X*t - n.Y*s, n.Z*n.Y*t + n.X*s, c + n.Z*n.Z*t},
	}, nil
}
