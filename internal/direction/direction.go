// Package direction assigns separation directions to coincident props.
//
// Each table is keyed by end location then color. The two colors at a
// shared location always receive mutually opposite directions; radial and
// nonradial orientations swap which axis the pair separates along.
package direction

import "github.com/tkalab/tka/internal/model"

var diamondRadial = map[model.Location]map[model.Color]model.SeparationDirection{
	model.North: {model.Blue: model.DirLeft, model.Red: model.DirRight},
	model.South: {model.Blue: model.DirLeft, model.Red: model.DirRight},
	model.East:  {model.Blue: model.DirUp, model.Red: model.DirDown},
	model.West:  {model.Blue: model.DirUp, model.Red: model.DirDown},
}

var diamondNonRadial = map[model.Location]map[model.Color]model.SeparationDirection{
	model.North: {model.Blue: model.DirUp, model.Red: model.DirDown},
	model.South: {model.Blue: model.DirUp, model.Red: model.DirDown},
	model.East:  {model.Blue: model.DirLeft, model.Red: model.DirRight},
	model.West:  {model.Blue: model.DirLeft, model.Red: model.DirRight},
}

var boxRadial = map[model.Location]map[model.Color]model.SeparationDirection{
	model.Northeast: {model.Blue: model.DirUpLeft, model.Red: model.DirDownRight},
	model.Southwest: {model.Blue: model.DirUpLeft, model.Red: model.DirDownRight},
	model.Southeast: {model.Blue: model.DirUpRight, model.Red: model.DirDownLeft},
	model.Northwest: {model.Blue: model.DirUpRight, model.Red: model.DirDownLeft},
}

var boxNonRadial = map[model.Location]map[model.Color]model.SeparationDirection{
	model.Northeast: {model.Blue: model.DirUpRight, model.Red: model.DirDownLeft},
	model.Southwest: {model.Blue: model.DirUpRight, model.Red: model.DirDownLeft},
	model.Southeast: {model.Blue: model.DirUpLeft, model.Red: model.DirDownRight},
	model.Northwest: {model.Blue: model.DirUpLeft, model.Red: model.DirDownRight},
}

// Separation returns the separation direction for one motion of a
// configuration. A nil motion or a location outside the grid mode's table
// (a caller contract violation, e.g. a diagonal under diamond mode) yields
// the zero direction.
func Separation(m *model.Motion, p *model.Pictograph, c model.Color) model.SeparationDirection {
	if m == nil || p == nil {
		return ""
	}

	var table map[model.Location]map[model.Color]model.SeparationDirection
	switch {
	case p.GridMode == model.GridBox && m.EndOri.Radial():
		table = boxRadial
	case p.GridMode == model.GridBox:
		table = boxNonRadial
	case m.EndOri.Radial():
		table = diamondRadial
	default:
		table = diamondNonRadial
	}

	if byColor, ok := table[m.EndLoc]; ok {
		return byColor[c]
	}
	return ""
}

// Opposite is re-exported for callers working at this layer.
func Opposite(d model.SeparationDirection) model.SeparationDirection {
	return model.OppositeDirection(d)
}
