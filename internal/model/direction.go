package model

// SeparationDirection is one of the eight compass-like directions used to
// displace a prop when both props land on the same grid point.
type SeparationDirection string

const (
	DirLeft      SeparationDirection = "left"
	DirRight     SeparationDirection = "right"
	DirUp        SeparationDirection = "up"
	DirDown      SeparationDirection = "down"
	DirUpLeft    SeparationDirection = "upleft"
	DirUpRight   SeparationDirection = "upright"
	DirDownLeft  SeparationDirection = "downleft"
	DirDownRight SeparationDirection = "downright"
)

var oppositeDirections = map[SeparationDirection]SeparationDirection{
	DirLeft:      DirRight,
	DirRight:     DirLeft,
	DirUp:        DirDown,
	DirDown:      DirUp,
	DirUpLeft:    DirDownRight,
	DirDownRight: DirUpLeft,
	DirUpRight:   DirDownLeft,
	DirDownLeft:  DirUpRight,
}

// OppositeDirection returns the direction's total opposite. Values outside
// the known set map to themselves, so the operation never fails.
func OppositeDirection(d SeparationDirection) SeparationDirection {
	if o, ok := oppositeDirections[d]; ok {
		return o
	}
	return d
}
