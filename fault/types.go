package fault

import (
	"errors"
	"fmt"
)

// Sentinel errors for fault-plane validation and kinematics.
var (
	// ErrStrikeRange indicates a strike outside [0, 360).
	ErrStrikeRange = errors.New("fault: strike must be in [0,360)")
	// ErrDipRange indicates a dip outside [0, 90].
	ErrDipRange = errors.New("fault: dip must be in [0,90]")
	// ErrRakeRange indicates a rake outside [0, 180].
	ErrRakeRange = errors.New("fault: rake must be in [0,180]")
	// ErrDipDirectionRequired indicates a missing dip direction on an
	// inclined (non-horizontal, non-vertical) plane.
	ErrDipDirectionRequired = errors.New("fault: dip direction required when dip is in (0,90)")
	// ErrDipDirectionForbidden indicates a dip direction supplied for a
	// horizontal or vertical plane, where it carries no information.
	ErrDipDirectionForbidden = errors.New("fault: dip direction must be undefined when dip is 0 or 90")
	// ErrDipDirectionAmbiguous indicates a named direction that cannot pick
	// one of the two possible dip azimuths (direction parallel to strike).
	ErrDipDirectionAmbiguous = errors.New("fault: dip direction does not discriminate the two dip azimuths")
	// ErrStrikeEndAmbiguous indicates a named strike end that cannot pick one
	// of the two strike line ends (direction perpendicular to strike).
	ErrStrikeEndAmbiguous = errors.New("fault: strike direction does not discriminate the two strike ends")
	// ErrUnknownDirection indicates an unparseable compass-direction token.
	ErrUnknownDirection = errors.New("fault: unknown direction token")
	// ErrUnknownMovement indicates an unparseable sense-of-movement token.
	ErrUnknownMovement = errors.New("fault: unknown sense-of-movement token")
	// ErrTrendOutOfPlane indicates a striation trend whose projection onto
	// the fault plane vanishes (trend perpendicular to a vertical plane).
	ErrTrendOutOfPlane = errors.New("fault: striation trend has no projection onto the plane")
	// ErrKinematicInconsistency indicates a declared sense of movement that
	// contradicts the slip direction implied by the geometry.
	ErrKinematicInconsistency = errors.New("fault: declared sense of movement contradicts computed slip")
)

// DipDirection names the compass octant toward which a plane dips.
// Undefined is reserved for horizontal (dip=0) and vertical (dip=90) planes.
type DipDirection int

const (
	Undefined DipDirection = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// dipDirectionAzimuth maps a named direction to its azimuth in degrees.
var dipDirectionAzimuth = map[DipDirection]float64{
	North: 0, NorthEast: 45, East: 90, SouthEast: 135,
	South: 180, SouthWest: 225, West: 270, NorthWest: 315,
}

var dipDirectionName = map[DipDirection]string{
	Undefined: "UND", North: "N", NorthEast: "NE", East: "E", SouthEast: "SE",
	South: "S", SouthWest: "SW", West: "W", NorthWest: "NW",
}

// String returns the compass token for d ("N", "NE", ..., "UND").
func (d DipDirection) String() string {
	if s, ok := dipDirectionName[d]; ok {
		return s
	}

	return fmt.Sprintf("DipDirection(%d)", int(d))
}

// ParseDipDirection parses a compass token into a DipDirection.
// Empty string and "UND" map to Undefined; unknown tokens yield
// ErrUnknownDirection.
func ParseDipDirection(token string) (DipDirection, error) {
	switch token {
	case "", "UND":
		return Undefined, nil
	case "N":
		return North, nil
	case "NE":
		return NorthEast, nil
	case "E":
		return East, nil
	case "SE":
		return SouthEast, nil
	case "S":
		return South, nil
	case "SW":
		return SouthWest, nil
	case "W":
		return West, nil
	case "NW":
		return NorthWest, nil
	default:
		return Undefined, fmt.Errorf("%w: %q", ErrUnknownDirection, token)
	}
}

// SenseOfMovement declares the observed fault kinematics. It is used only
// for consistency-checking against computed slip, never for geometry.
type SenseOfMovement int

const (
	UnknownMovement SenseOfMovement = iota
	NormalMovement
	InverseMovement
	RightLateral
	LeftLateral
	NormalRightLateral
	NormalLeftLateral
	InverseRightLateral
	InverseLeftLateral
)

var movementName = map[SenseOfMovement]string{
	UnknownMovement: "UND", NormalMovement: "N", InverseMovement: "I",
	RightLateral: "RL", LeftLateral: "LL",
	NormalRightLateral: "N_RL", NormalLeftLateral: "N_LL",
	InverseRightLateral: "I_RL", InverseLeftLateral: "I_LL",
}

// String returns the movement token for s ("N", "I_RL", ..., "UND").
func (s SenseOfMovement) String() string {
	if n, ok := movementName[s]; ok {
		return n
	}

	return fmt.Sprintf("SenseOfMovement(%d)", int(s))
}

// ParseSenseOfMovement parses a movement token. Empty string and "UND" map
// to UnknownMovement; unknown tokens yield ErrUnknownMovement.
func ParseSenseOfMovement(token string) (SenseOfMovement, error) {
	switch token {
	case "", "UND":
		return UnknownMovement, nil
	case "N":
		return NormalMovement, nil
	case "I":
		return InverseMovement, nil
	case "RL":
		return RightLateral, nil
	case "LL":
		return LeftLateral, nil
	case "N_RL":
		return NormalRightLateral, nil
	case "N_LL":
		return NormalLeftLateral, nil
	case "I_RL":
		return InverseRightLateral, nil
	case "I_LL":
		return InverseLeftLateral, nil
	default:
		return UnknownMovement, fmt.Errorf("%w: %q", ErrUnknownMovement, token)
	}
}

// dipSense returns +1 for normal, -1 for inverse, 0 when the dip-parallel
// component is unconstrained by s.
func (s SenseOfMovement) dipSense() int {
	switch s {
	case NormalMovement, NormalRightLateral, NormalLeftLateral:
		return 1
	case InverseMovement, InverseRightLateral, InverseLeftLateral:
		return -1
	default:
		return 0
	}
}

// lateralSense returns +1 for right-lateral, -1 for left-lateral, 0 when the
// strike-parallel component is unconstrained by s.
func (s SenseOfMovement) lateralSense() int {
	switch s {
	case RightLateral, NormalRightLateral, InverseRightLateral:
		return 1
	case LeftLateral, NormalLeftLateral, InverseLeftLateral:
		return -1
	default:
		return 0
	}
}
