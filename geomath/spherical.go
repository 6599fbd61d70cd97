package geomath

import "math"

// SphericalCoords locates a unit direction on the sphere in frame S.
//
//   - Phi is the azimuth measured from East (X axis) toward North (Y axis),
//     in radians.
//   - Theta is the colatitude measured from Up (Z axis), in [0, π].
//
// Used as an intermediate representation when converting between fault-plane
// angles and unit vectors; never stored long term.
type SphericalCoords struct {
	Phi, Theta float64
}

// Unit converts spherical coordinates to the corresponding unit vector in S.
func (s SphericalCoords) Unit() Vec3 {
	sinT := math.Sin(s.Theta)

	return Vec3{
		sinT * math.Cos(s.Phi),
		sinT * math.Sin(s.Phi),
		math.Cos(s.Theta),
	}
}

// SphericalFromVec converts a non-zero vector to spherical coordinates.
// The zero vector maps to (0, 0).
func SphericalFromVec(v Vec3) SphericalCoords {
	n := v.Norm()
	if n == 0 {
		return SphericalCoords{}
	}

	return SphericalCoords{
		Phi:   math.Atan2(v.Y, v.X),
		Theta: ClampedAcos(v.Z / n),
	}
}
