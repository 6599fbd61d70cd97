package data

import "github.com/tectonik/stressinv/geomath"

// signVariants are the four diagonal sign flips producing equivalent
// right-handed relabelings of a (σ1, σ3, σ2) principal frame: an axially
// unordered stress ellipsoid is unchanged under (σ1,σ3,σ2), (−σ1,−σ3,σ2),
// (−σ1,σ3,−σ2) and (σ1,−σ3,−σ2).
var signVariants = [4][3]float64{
	{1, 1, 1},
	{-1, -1, 1},
	{-1, 1, -1},
	{1, -1, -1},
}

// MinRotationAngle returns the minimum rotation angle, in [0, π], that
// brings one right-handed principal-axis frame onto another, given the
// misfit rotation tensor t between them (typically Mrot·Hᵀ).
//
// For each sign variant the rotation angle follows from
// trace = 1 + 2·cos(angle); the variant maximizing the trace minimizes the
// angle. The cosine argument is clamped before acos, so floating-point
// overshoot never produces NaN.
func MinRotationAngle(t geomath.Mat3) float64 {
	best := -4.0 // below the minimum possible trace of -3
	for _, s := range signVariants {
		tr := s[0]*t[0][0] + s[1]*t[1][1] + s[2]*t[2][2]
		if tr > best {
			best = tr
		}
	}

	return geomath.ClampedAcos((best - 1) / 2)
}
