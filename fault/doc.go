// Package fault converts geological fault-plane field measurements
// (strike, dip, dip direction, rake or striation trend, sense of movement)
// into unit vectors in the geographic frame S = (East, North, Up).
//
// What:
//
//   - Plane: validated (strike, dip, dip-direction) triple with its derived
//     upward-pointing unit normal and down-dip / along-strike unit vectors.
//   - Striation construction from a rake angle (measured from a named strike
//     end) or from the azimuth of the striation's horizontal trace.
//   - SenseOfMovement / DipDirection enumerations with token parsing.
//   - Movement-consistency checking: the declared sense of movement is
//     compared against the strike-parallel and dip-parallel components of a
//     computed slip vector; any contradiction is a kinematic-inconsistency
//     error, never silently corrected.
//
// Conventions:
//
//   - Azimuths are measured in degrees clockwise from North; dips in degrees
//     from horizontal, in [0, 90].
//   - The plane normal always points upward (non-negative Up component).
//     For a vertical plane the normal lies at azimuth strike+90°.
//   - DipDirection must be Undefined if and only if dip is exactly 0 or 90;
//     anything else is a validation error.
//   - A striation lies in its plane: |normal·striation| < 1e-7. A violation
//     of that invariant is a caller logic error, not a recoverable condition.
//
// Errors are sentinel values wrapped with the offending value and expected
// range, so callers can both match with errors.Is and report precisely.
package fault
