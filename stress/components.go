package stress

import (
	"github.com/tectonik/stressinv/geomath"
)

// ShearEps is the resolved shear-stress magnitude below which a plane is
// treated as unsheared (sub-perpendicular to a principal stress axis).
const ShearEps = 1e-7

// FaultStressComponents resolves a stress tensor onto a plane of unit
// normal n:
//
//	traction     t  = σ·n
//	normalStress σn = n·t            (scalar, compression negative)
//	shear        τ  = t − σn·n      (in-plane vector)
//
// shearMag is |τ|. When shearMag ≤ ShearEps the plane is sub-perpendicular
// to a principal axis and carries no resolvable shear direction.
func FaultStressComponents(sigma geomath.Mat3, normal geomath.Vec3) (shear geomath.Vec3, normalStress, shearMag float64) {
	traction := sigma.MulVec(normal)
	normalStress = normal.Dot(traction)
	shear = traction.Sub(normal.Scale(normalStress))
	shearMag = shear.Norm()

	return shear, normalStress, shearMag
}

// AngularDifStriation returns the angle in [0, π] between an observed
// striation and the resolved shear-stress direction. shearMag must be the
// magnitude of shear and greater than ShearEps; callers decide how to score
// unsheared planes (π/2 for striated-plane criteria, π for focal mechanisms).
func AngularDifStriation(striation, shear geomath.Vec3, shearMag float64) float64 {
	return geomath.ClampedAcos(striation.Dot(shear) / shearMag)
}
