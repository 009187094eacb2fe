// Package placement computes the final separation offsets that keep two
// coincident props visually distinct.
package placement

import (
	"github.com/tkalab/tka/internal/direction"
	"github.com/tkalab/tka/internal/model"
)

// Offset is a 2D pixel displacement. Y grows downward (screen space).
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// betaLetters is the closed set of letters whose canonical end state
// places both props at the same location.
var betaLetters = map[string]bool{
	"G": true, "H": true, "I": true, "J": true, "K": true, "L": true,
	"Y": true, "Z": true, "Y-": true, "Z-": true,
	"Ψ": true, "Ψ-": true, "β": true,
}

// defaultMagnitudes maps prop type to separation distance in pixels.
var defaultMagnitudes = map[model.PropType]float64{
	model.PropStaff:    25,
	model.PropBigStaff: 40,
	model.PropClub:     22,
	model.PropFan:      20,
	model.PropTriad:    22,
	model.PropHand:     15,
}

// unitVectors maps each separation direction to its unit displacement.
// Diagonals carry the full magnitude on both axes; grid positions sit on a
// square, not a circle.
var unitVectors = map[model.SeparationDirection]Offset{
	model.DirLeft:      {X: -1, Y: 0},
	model.DirRight:     {X: 1, Y: 0},
	model.DirUp:        {X: 0, Y: -1},
	model.DirDown:      {X: 0, Y: 1},
	model.DirUpLeft:    {X: -1, Y: -1},
	model.DirUpRight:   {X: 1, Y: -1},
	model.DirDownLeft:  {X: -1, Y: 1},
	model.DirDownRight: {X: 1, Y: 1},
}

// Placer turns separation directions into pixel offsets for a selected
// prop type.
type Placer struct {
	propType   model.PropType
	magnitudes map[model.PropType]float64
}

// NewPlacer builds a placer for one prop type. overrides replaces built-in
// magnitudes per prop type; zero or negative override values are ignored.
func NewPlacer(propType model.PropType, overrides map[model.PropType]float64) *Placer {
	mags := make(map[model.PropType]float64, len(defaultMagnitudes))
	for k, v := range defaultMagnitudes {
		mags[k] = v
	}
	for k, v := range overrides {
		if v > 0 {
			mags[k] = v
		}
	}
	return &Placer{propType: propType, magnitudes: mags}
}

// ShouldApplyBeta reports whether the configuration's letter is in the
// beta-ending set.
func (pl *Placer) ShouldApplyBeta(p *model.Pictograph) bool {
	if p == nil || p.Blue == nil || p.Red == nil {
		return false
	}
	return betaLetters[p.Letter]
}

// DetectPropOverlap reports whether both motions end at the same location.
// This is a pure geometric check, usable before a letter is determined.
func (pl *Placer) DetectPropOverlap(p *model.Pictograph) bool {
	if p == nil || p.Blue == nil || p.Red == nil {
		return false
	}
	return p.Blue.EndLoc == p.Red.EndLoc
}

// SeparationOffsets computes the pixel offsets for both props. Letter I
// goes through the opposition override; everything else uses the standard
// per-motion tables. A missing motion on either side yields zero offsets.
func (pl *Placer) SeparationOffsets(p *model.Pictograph) (blue, red Offset) {
	if p == nil || p.Blue == nil || p.Red == nil {
		return Offset{}, Offset{}
	}

	var blueDir, redDir model.SeparationDirection
	if p.Letter == "I" {
		blueDir, redDir = direction.LetterIDirections(p)
	} else {
		blueDir = direction.Separation(p.Blue, p, model.Blue)
		redDir = direction.Separation(p.Red, p, model.Red)
	}

	mag := pl.magnitudes[pl.propType]
	return scaled(blueDir, mag), scaled(redDir, mag)
}

func scaled(d model.SeparationDirection, mag float64) Offset {
	u, ok := unitVectors[d]
	if !ok {
		return Offset{}
	}
	return Offset{X: u.X * mag, Y: u.Y * mag}
}
