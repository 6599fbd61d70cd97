package geomath

import (
	"errors"
	"math"
)

// UnitEps is the tolerance under which a direction vector is considered
// unit length: | |v| - 1 | ≤ UnitEps.
const UnitEps = 1e-7

// OrthoEps is the tolerance for orthogonality and determinant checks on
// rotation tensors.
const OrthoEps = 1e-9

// ErrZeroVector is returned when a (near-)zero vector cannot be normalized.
var ErrZeroVector = errors.New("geomath: cannot normalize zero vector")

// Vec3 is a 3-vector in the geographic frame S = (East, North, Up).
// It is a value type; all methods return new values and never mutate.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v.X, s * v.Y, s * v.Z}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product v×w, right-handed in S.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length |v|.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v/|v|, or ErrZeroVector when |v| ≤ UnitEps.
func (v Vec3) Normalize() (Vec3, error) {
	n := v.Norm()
	if n <= UnitEps {
		return Vec3{}, ErrZeroVector
	}

	return v.Scale(1 / n), nil
}

// IsUnit reports whether |v| is 1 within UnitEps.
func (v Vec3) IsUnit() bool {
	return math.Abs(v.Norm()-1) <= UnitEps
}

// AngleTo returns the angle between v and w in [0, π].
// Both vectors must be non-zero; unit inputs avoid the extra normalization.
func (v Vec3) AngleTo(w Vec3) float64 {
	nv, nw := v.Norm(), w.Norm()
	if nv == 0 || nw == 0 {
		return 0
	}

	return ClampedAcos(v.Dot(w) / (nv * nw))
}

// AxialAngleTo returns the angle between the axes spanned by v and w in
// [0, π/2]. Axes are sign-insensitive: ±v describe the same axis.
func (v Vec3) AxialAngleTo(w Vec3) float64 {
	nv, nw := v.Norm(), w.Norm()
	if nv == 0 || nw == 0 {
		return 0
	}

	return ClampedAcos(math.Abs(v.Dot(w)) / (nv * nw))
}

// ClampedAcos returns acos(x) after pinning x into [-1, 1].
// Floating-point overshoot on unit-vector dot products would otherwise
// produce NaN at the domain boundary.
func ClampedAcos(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return math.Acos(x)
}

// ClampedAsin returns asin(x) after pinning x into [-1, 1].
func ClampedAsin(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return math.Asin(x)
}
