package fault

import (
	"fmt"
	"math"

	"github.com/tectonik/stressinv/geomath"
)

// kinTol is the component magnitude below which a slip direction is treated
// as carrying no dip-parallel (or strike-parallel) information.
const kinTol = 1e-7

// MovementFromSlip classifies a slip vector (motion of the hanging wall,
// unit length, lying in the plane) into a SenseOfMovement.
//
// The dip-parallel component down-dip means normal faulting, up-dip inverse.
// The lateral sense follows the usual field convention: facing the dip
// azimuth from the footwall, a hanging wall moving to the observer's right
// is right-lateral.
func (p Plane) MovementFromSlip(slip geomath.Vec3) SenseOfMovement {
	dipComp := slip.Dot(p.DipUnit())
	latComp := slip.Dot(azimuthUnit(math.Mod(p.dipAzimuth+90, 360)))

	var dip, lat int
	if dipComp > kinTol {
		dip = 1
	} else if dipComp < -kinTol {
		dip = -1
	}
	if latComp > kinTol {
		lat = 1
	} else if latComp < -kinTol {
		lat = -1
	}

	switch {
	case dip == 1 && lat == 1:
		return NormalRightLateral
	case dip == 1 && lat == -1:
		return NormalLeftLateral
	case dip == -1 && lat == 1:
		return InverseRightLateral
	case dip == -1 && lat == -1:
		return InverseLeftLateral
	case dip == 1:
		return NormalMovement
	case dip == -1:
		return InverseMovement
	case lat == 1:
		return RightLateral
	case lat == -1:
		return LeftLateral
	default:
		return UnknownMovement
	}
}

// CheckMovement verifies that the declared sense of movement does not
// contradict the computed slip vector. Each declared component (dip-parallel,
// strike-parallel) must agree in sign with the corresponding slip component
// and exceed the kinematic tolerance; undeclared components are unconstrained.
// UnknownMovement always passes.
//
// A contradiction yields an error wrapping ErrKinematicInconsistency that
// names both the declared and the computed movement.
func (p Plane) CheckMovement(slip geomath.Vec3, declared SenseOfMovement) error {
	if declared == UnknownMovement {
		return nil
	}

	computed := p.MovementFromSlip(slip)

	if ds := declared.dipSense(); ds != 0 {
		if float64(ds)*slip.Dot(p.DipUnit()) <= kinTol {
			return fmt.Errorf("%w: declared %s, computed %s (strike=%g dip=%g)",
				ErrKinematicInconsistency, declared, computed, p.Strike, p.Dip)
		}
	}
	if ls := declared.lateralSense(); ls != 0 {
		right := azimuthUnit(math.Mod(p.dipAzimuth+90, 360))
		if float64(ls)*slip.Dot(right) <= kinTol {
			return fmt.Errorf("%w: declared %s, computed %s (strike=%g dip=%g)",
				ErrKinematicInconsistency, declared, computed, p.Strike, p.Dip)
		}
	}

	return nil
}
