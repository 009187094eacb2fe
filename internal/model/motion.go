// Package model defines the core pictograph data types.
package model

import "fmt"

// MotionType classifies how a prop moves between two grid locations.
type MotionType string

const (
	MotionPro    MotionType = "pro"
	MotionAnti   MotionType = "anti"
	MotionStatic MotionType = "static"
	MotionDash   MotionType = "dash"
	MotionFloat  MotionType = "float"
)

// RotationDirection is the prop's rotation sense while moving.
type RotationDirection string

const (
	RotationClockwise        RotationDirection = "cw"
	RotationCounterClockwise RotationDirection = "ccw"
	RotationNone             RotationDirection = "no_rot"
)

// Location is one of the eight grid points.
type Location string

const (
	North     Location = "n"
	East      Location = "e"
	South     Location = "s"
	West      Location = "w"
	Northeast Location = "ne"
	Southeast Location = "se"
	Southwest Location = "sw"
	Northwest Location = "nw"
)

// Orientation is the prop's facing relative to the grid center.
type Orientation string

const (
	OrientationIn      Orientation = "in"
	OrientationOut     Orientation = "out"
	OrientationClock   Orientation = "clock"
	OrientationCounter Orientation = "counter"
)

// GridMode selects which location set governs the lookup tables.
type GridMode string

const (
	GridDiamond GridMode = "diamond"
	GridBox     GridMode = "box"
)

// Color identifies one of the two props.
type Color string

const (
	Blue Color = "blue"
	Red  Color = "red"
)

// PropType is the physical prop mounted on a motion, which scales
// separation offsets.
type PropType string

const (
	PropStaff    PropType = "staff"
	PropBigStaff PropType = "bigstaff"
	PropClub     PropType = "club"
	PropFan      PropType = "fan"
	PropTriad    PropType = "triad"
	PropHand     PropType = "hand"
)

// FloatTurns is the sentinel turns value marking a float transition.
const FloatTurns float64 = -1

// Motion describes one prop's movement. Values are constructed once and
// never mutated; the prefloat fields are set only for float motions and
// record what the motion was before floating.
type Motion struct {
	MotionType        MotionType        `json:"motion_type"`
	RotationDirection RotationDirection `json:"prop_rot_dir"`
	StartLoc          Location          `json:"start_loc"`
	EndLoc            Location          `json:"end_loc"`
	StartOri          Orientation       `json:"start_ori"`
	EndOri            Orientation       `json:"end_ori"`
	Turns             float64           `json:"turns"`

	PrefloatMotionType        MotionType        `json:"prefloat_motion_type,omitempty"`
	PrefloatRotationDirection RotationDirection `json:"prefloat_prop_rot_dir,omitempty"`
}

// ValidMotionTypes are the allowed motion types.
var ValidMotionTypes = map[MotionType]bool{
	MotionPro:    true,
	MotionAnti:   true,
	MotionStatic: true,
	MotionDash:   true,
	MotionFloat:  true,
}

// ValidRotationDirections are the allowed rotation directions.
var ValidRotationDirections = map[RotationDirection]bool{
	RotationClockwise:        true,
	RotationCounterClockwise: true,
	RotationNone:             true,
}

// ValidLocations are the allowed grid locations.
var ValidLocations = map[Location]bool{
	North: true, East: true, South: true, West: true,
	Northeast: true, Southeast: true, Southwest: true, Northwest: true,
}

// ValidOrientations are the allowed orientations.
var ValidOrientations = map[Orientation]bool{
	OrientationIn:      true,
	OrientationOut:     true,
	OrientationClock:   true,
	OrientationCounter: true,
}

// ValidGridModes are the allowed grid modes.
var ValidGridModes = map[GridMode]bool{
	GridDiamond: true,
	GridBox:     true,
}

// ValidPropTypes are the allowed prop types.
var ValidPropTypes = map[PropType]bool{
	PropStaff: true, PropBigStaff: true, PropClub: true,
	PropFan: true, PropTriad: true, PropHand: true,
}

// Radial reports whether the orientation is a radial state (in/out) as
// opposed to a nonradial one (clock/counter).
func (o Orientation) Radial() bool {
	return o == OrientationIn || o == OrientationOut
}

// Flip returns the opposing orientation within the same class: in<->out,
// clock<->counter. Unknown orientations are returned unchanged.
func (o Orientation) Flip() Orientation {
	switch o {
	case OrientationIn:
		return OrientationOut
	case OrientationOut:
		return OrientationIn
	case OrientationClock:
		return OrientationCounter
	case OrientationCounter:
		return OrientationClock
	}
	return o
}

// Validate checks all enum fields against the allowed value sets.
// Turns is deliberately not range-checked here: out-of-domain turns are a
// defined input that downstream calculators handle by skipping propagation.
func (m *Motion) Validate() error {
	if !ValidMotionTypes[m.MotionType] {
		return fmt.Errorf("invalid motion_type %q", m.MotionType)
	}
	if !ValidRotationDirections[m.RotationDirection] {
		return fmt.Errorf("invalid prop_rot_dir %q", m.RotationDirection)
	}
	if !ValidLocations[m.StartLoc] {
		return fmt.Errorf("invalid start_loc %q", m.StartLoc)
	}
	if !ValidLocations[m.EndLoc] {
		return fmt.Errorf("invalid end_loc %q", m.EndLoc)
	}
	if !ValidOrientations[m.StartOri] {
		return fmt.Errorf("invalid start_ori %q", m.StartOri)
	}
	if !ValidOrientations[m.EndOri] {
		return fmt.Errorf("invalid end_ori %q", m.EndOri)
	}
	if m.PrefloatMotionType != "" && !ValidMotionTypes[m.PrefloatMotionType] {
		return fmt.Errorf("invalid prefloat_motion_type %q", m.PrefloatMotionType)
	}
	if m.PrefloatMotionType == MotionFloat {
		return fmt.Errorf("prefloat_motion_type cannot itself be float")
	}
	if m.PrefloatRotationDirection != "" && !ValidRotationDirections[m.PrefloatRotationDirection] {
		return fmt.Errorf("invalid prefloat_prop_rot_dir %q", m.PrefloatRotationDirection)
	}
	return nil
}
