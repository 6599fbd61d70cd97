package fault

import (
	"fmt"
	"math"

	"github.com/tectonik/stressinv/geomath"
)

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

// azimuthUnit returns the horizontal unit vector at the given azimuth
// (degrees clockwise from North) in frame S = (East, North, Up).
func azimuthUnit(azimuthDeg float64) geomath.Vec3 {
	a := degToRad(azimuthDeg)

	return geomath.Vec3{X: math.Sin(a), Y: math.Cos(a)}
}

// azimuthDistance returns the absolute angular distance between two azimuths
// in degrees, in [0, 180].
func azimuthDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}

	return d
}

// Plane is a validated fault-plane orientation together with its derived
// geometry. Construct with NewPlane; the zero value is not usable.
type Plane struct {
	Strike float64      // azimuth of the strike line, degrees in [0,360)
	Dip    float64      // dip angle, degrees in [0,90]
	DipDir DipDirection // compass octant toward which the plane dips

	normal     geomath.Vec3
	dipAzimuth float64 // resolved azimuth of the dip direction, degrees
}

// NewPlane validates a (strike, dip, dip-direction) triple and derives the
// plane geometry.
//
// Validation rules:
//   - strike ∈ [0,360), dip ∈ [0,90].
//   - DipDir must be Undefined iff dip is exactly 0 or 90; otherwise it must
//     name one of the 8 compass octants. Violations are validation errors,
//     never silently corrected.
//   - The named octant must discriminate between the two candidate dip
//     azimuths strike±90°; a direction parallel to the strike is ambiguous.
//
// The derived normal is unit length and points upward (non-negative Up
// component). For a vertical plane the normal lies at azimuth strike+90°.
func NewPlane(strike, dip float64, dipDir DipDirection) (Plane, error) {
	if strike < 0 || strike >= 360 || math.IsNaN(strike) {
		return Plane{}, fmt.Errorf("%w: got %g", ErrStrikeRange, strike)
	}
	if dip < 0 || dip > 90 || math.IsNaN(dip) {
		return Plane{}, fmt.Errorf("%w: got %g", ErrDipRange, dip)
	}

	degenerate := dip == 0 || dip == 90
	if degenerate && dipDir != Undefined {
		return Plane{}, fmt.Errorf("%w: dip=%g, direction=%s", ErrDipDirectionForbidden, dip, dipDir)
	}
	if !degenerate && dipDir == Undefined {
		return Plane{}, fmt.Errorf("%w: dip=%g", ErrDipDirectionRequired, dip)
	}

	dipAz, err := resolveDipAzimuth(strike, dipDir)
	if err != nil {
		return Plane{}, err
	}

	delta, beta := degToRad(dip), degToRad(dipAz)
	normal := geomath.Vec3{
		X: math.Sin(delta) * math.Sin(beta),
		Y: math.Sin(delta) * math.Cos(beta),
		Z: math.Cos(delta),
	}

	return Plane{
		Strike:     strike,
		Dip:        dip,
		DipDir:     dipDir,
		normal:     normal,
		dipAzimuth: dipAz,
	}, nil
}

// resolveDipAzimuth picks the dip azimuth among strike±90° using the named
// octant. Undefined (horizontal/vertical planes) defaults to strike+90°.
func resolveDipAzimuth(strike float64, dipDir DipDirection) (float64, error) {
	c1 := math.Mod(strike+90, 360)
	if dipDir == Undefined {
		return c1, nil
	}

	c2 := math.Mod(strike+270, 360)
	target := dipDirectionAzimuth[dipDir]
	d1, d2 := azimuthDistance(c1, target), azimuthDistance(c2, target)
	if math.Abs(d1-d2) < 1e-9 {
		return 0, fmt.Errorf("%w: strike=%g, direction=%s", ErrDipDirectionAmbiguous, strike, dipDir)
	}
	if d2 < d1 {
		return c2, nil
	}

	return c1, nil
}

// Normal returns the upward-pointing unit normal of the plane.
func (p Plane) Normal() geomath.Vec3 { return p.normal }

// DipAzimuth returns the resolved dip azimuth in degrees.
func (p Plane) DipAzimuth() float64 { return p.dipAzimuth }

// StrikeUnit returns the horizontal unit vector along the strike azimuth.
func (p Plane) StrikeUnit() geomath.Vec3 { return azimuthUnit(p.Strike) }

// DipUnit returns the in-plane unit vector pointing down-dip.
func (p Plane) DipUnit() geomath.Vec3 {
	delta, beta := degToRad(p.Dip), degToRad(p.dipAzimuth)

	return geomath.Vec3{
		X: math.Cos(delta) * math.Sin(beta),
		Y: math.Cos(delta) * math.Cos(beta),
		Z: -math.Sin(delta),
	}
}

// StriationFromRake derives the striation unit vector from a rake angle
// measured in the plane from the strike end named by strikeEnd, positive
// toward down-dip. rake must lie in [0, 180] degrees, so the striation
// always plunges downward.
//
// The result lies in the plane: |Normal()·striation| < 1e-7 by construction.
func (p Plane) StriationFromRake(rake float64, strikeEnd DipDirection) (geomath.Vec3, error) {
	if rake < 0 || rake > 180 || math.IsNaN(rake) {
		return geomath.Vec3{}, fmt.Errorf("%w: got %g", ErrRakeRange, rake)
	}

	return p.SlipFromRake(rake, strikeEnd)
}

// SlipFromRake derives an oriented slip unit vector from a full-circle rake
// in [-180, 180] degrees, measured in the plane from the strike end named by
// strikeEnd, positive toward down-dip. Used by focal mechanisms, whose rakes
// carry the slip sense (negative rakes plunge upward).
func (p Plane) SlipFromRake(rake float64, strikeEnd DipDirection) (geomath.Vec3, error) {
	if rake < -180 || rake > 180 || math.IsNaN(rake) {
		return geomath.Vec3{}, fmt.Errorf("%w: got %g (full-circle rake is [-180,180])", ErrRakeRange, rake)
	}
	if strikeEnd == Undefined {
		return geomath.Vec3{}, fmt.Errorf("%w: strike end is undefined", ErrUnknownDirection)
	}

	// Pick the strike end nearest to the named octant.
	c1 := p.Strike
	c2 := math.Mod(p.Strike+180, 360)
	target := dipDirectionAzimuth[strikeEnd]
	d1, d2 := azimuthDistance(c1, target), azimuthDistance(c2, target)
	if math.Abs(d1-d2) < 1e-9 {
		return geomath.Vec3{}, fmt.Errorf("%w: strike=%g, end=%s", ErrStrikeEndAmbiguous, p.Strike, strikeEnd)
	}
	end := c1
	if d2 < d1 {
		end = c2
	}

	r := degToRad(rake)
	s := azimuthUnit(end).Scale(math.Cos(r)).Add(p.DipUnit().Scale(math.Sin(r)))

	return s, nil
}

// StriationFromTrend derives the striation unit vector from the azimuth of
// its horizontal trace, by projecting the trend direction onto the plane.
// The result is oriented with non-positive Up component (plunge downward).
// Returns ErrTrendOutOfPlane when the projection vanishes (trend perpendicular
// to a vertical plane).
func (p Plane) StriationFromTrend(trend float64) (geomath.Vec3, error) {
	if trend < 0 || trend >= 360 || math.IsNaN(trend) {
		return geomath.Vec3{}, fmt.Errorf("%w: trend %g not in [0,360)", ErrStrikeRange, trend)
	}

	h := azimuthUnit(trend)
	proj := h.Sub(p.normal.Scale(h.Dot(p.normal)))
	s, err := proj.Normalize()
	if err != nil {
		return geomath.Vec3{}, fmt.Errorf("%w: trend=%g, strike=%g, dip=%g", ErrTrendOutOfPlane, trend, p.Strike, p.Dip)
	}
	if s.Z > geomath.UnitEps {
		s = s.Neg()
	}

	return s, nil
}
