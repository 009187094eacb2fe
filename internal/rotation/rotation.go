// Package rotation computes on-screen prop rotation angles in degrees.
package rotation

import (
	"math"

	"github.com/tkalab/tka/internal/model"
)

// baseAngles maps (orientation, end location) to a display angle. Only the
// diamond cardinals are covered; for every covered location the out angle
// is the in angle plus 180 mod 360.
var baseAngles = map[model.Orientation]map[model.Location]float64{
	model.OrientationIn: {
		model.North: 90,
		model.South: 270,
		model.West:  0,
		model.East:  180,
	},
	model.OrientationOut: {
		model.North: 270,
		model.South: 90,
		model.West:  180,
		model.East:  0,
	},
}

// PropAngle returns the display rotation angle for a motion, propagating
// the reference start orientation through the motion's turns. Locations
// outside the angle table (diagonals) yield 0.
func PropAngle(m *model.Motion, ref model.Orientation) float64 {
	if m == nil {
		return 0
	}
	ori := EndOrientation(m, ref)
	if byLoc, ok := baseAngles[ori]; ok {
		if angle, ok := byLoc[m.EndLoc]; ok {
			return angle
		}
	}
	return 0
}

// EndOrientation propagates ref through the motion's turns.
//
// Pro and static preserve orientation on even whole turns and flip on odd
// ones; anti and dash are the structural inverse. A half turn flips once
// more on top of the whole-turn state, so the two flips cancel when both
// apply. Out-of-domain turns (outside 0..3 in half steps, including the
// float sentinel) skip propagation entirely.
func EndOrientation(m *model.Motion, ref model.Orientation) model.Orientation {
	if m == nil || !validTurns(m.Turns) {
		return ref
	}

	whole := int(math.Floor(m.Turns))
	half := m.Turns-float64(whole) == 0.5

	var wholeFlips bool
	switch m.MotionType {
	case model.MotionPro, model.MotionStatic:
		wholeFlips = whole%2 == 1
	case model.MotionAnti, model.MotionDash:
		wholeFlips = whole%2 == 0
	default:
		// Floats carry no turn propagation.
		return ref
	}

	if wholeFlips != half {
		return ref.Flip()
	}
	return ref
}

// validTurns reports whether turns is in 0..3 inclusive in 0.5 steps.
func validTurns(t float64) bool {
	if t < 0 || t > 3 {
		return false
	}
	return math.Mod(t*2, 1) == 0
}
