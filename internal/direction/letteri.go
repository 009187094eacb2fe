package direction

import "github.com/tkalab/tka/internal/model"

// LetterIDirections resolves the two separation directions for letter I,
// whose defining feature is both motions ending at the same location. The
// generic tables would hand both props the same direction there, so the
// pro motion's direction anchors and the partner takes the exact opposite.
//
// If both motions are pro (degenerate input) red takes precedence as the
// anchor. If neither is pro the directions are computed independently with
// no opposition enforced.
func LetterIDirections(p *model.Pictograph) (blue, red model.SeparationDirection) {
	if p == nil {
		return "", ""
	}

	switch {
	case p.Red != nil && p.Red.MotionType == model.MotionPro:
		red = Separation(p.Red, p, model.Red)
		blue = Opposite(red)
	case p.Blue != nil && p.Blue.MotionType == model.MotionPro:
		blue = Separation(p.Blue, p, model.Blue)
		red = Opposite(blue)
	default:
		blue = Separation(p.Blue, p, model.Blue)
		red = Separation(p.Red, p, model.Red)
	}
	return blue, red
}
