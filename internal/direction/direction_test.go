package direction

import (
	"testing"

	"github.com/tkalab/tka/internal/model"
)

func motionAt(mt model.MotionType, end model.Location, ori model.Orientation) *model.Motion {
	return &model.Motion{MotionType: mt, EndLoc: end, EndOri: ori}
}

// The two colors at a shared end location must always separate in exactly
// opposite directions, in every grid mode and orientation class.
func TestSeparation_ColorsAlwaysOpposite(t *testing.T) {
	cases := []struct {
		grid model.GridMode
		locs []model.Location
	}{
		{model.GridDiamond, []model.Location{model.North, model.East, model.South, model.West}},
		{model.GridBox, []model.Location{model.Northeast, model.Southeast, model.Southwest, model.Northwest}},
	}
	oris := []model.Orientation{
		model.OrientationIn, model.OrientationOut,
		model.OrientationClock, model.OrientationCounter,
	}

	for _, c := range cases {
		for _, loc := range c.locs {
			for _, ori := range oris {
				p := &model.Pictograph{GridMode: c.grid}
				m := motionAt(model.MotionPro, loc, ori)
				blue := Separation(m, p, model.Blue)
				red := Separation(m, p, model.Red)
				if blue == "" || red == "" {
					t.Errorf("%s/%s/%s: missing direction (blue=%q red=%q)", c.grid, loc, ori, blue, red)
					continue
				}
				if Opposite(blue) != red {
					t.Errorf("%s/%s/%s: blue %s and red %s are not opposite", c.grid, loc, ori, blue, red)
				}
			}
		}
	}
}

func TestSeparation_RadialVsNonRadialSwapAxis(t *testing.T) {
	p := &model.Pictograph{GridMode: model.GridDiamond}

	radial := Separation(motionAt(model.MotionPro, model.North, model.OrientationIn), p, model.Blue)
	nonradial := Separation(motionAt(model.MotionPro, model.North, model.OrientationClock), p, model.Blue)
	if radial != model.DirLeft {
		t.Errorf("diamond radial north blue = %s, want left", radial)
	}
	if nonradial != model.DirUp {
		t.Errorf("diamond nonradial north blue = %s, want up", nonradial)
	}
}

func TestSeparation_BoxDiagonals(t *testing.T) {
	p := &model.Pictograph{GridMode: model.GridBox}

	radial := Separation(motionAt(model.MotionPro, model.Northeast, model.OrientationOut), p, model.Blue)
	if radial != model.DirUpLeft {
		t.Errorf("box radial ne blue = %s, want upleft", radial)
	}
	nonradial := Separation(motionAt(model.MotionPro, model.Northeast, model.OrientationCounter), p, model.Blue)
	if nonradial != model.DirUpRight {
		t.Errorf("box nonradial ne blue = %s, want upright", nonradial)
	}
}

func TestSeparation_TableMiss(t *testing.T) {
	// A diagonal under diamond mode is a caller contract violation and
	// yields the zero direction rather than a guess.
	p := &model.Pictograph{GridMode: model.GridDiamond}
	if got := Separation(motionAt(model.MotionPro, model.Northeast, model.OrientationIn), p, model.Blue); got != "" {
		t.Errorf("diamond diagonal should miss, got %s", got)
	}

	if got := Separation(nil, p, model.Blue); got != "" {
		t.Errorf("nil motion should yield zero direction, got %s", got)
	}
}

func TestLetterI_ProAnchorsOpposition(t *testing.T) {
	pro := motionAt(model.MotionPro, model.North, model.OrientationIn)
	anti := motionAt(model.MotionAnti, model.East, model.OrientationIn)

	p := &model.Pictograph{Letter: "I", GridMode: model.GridDiamond, Blue: pro, Red: anti}
	blue, red := LetterIDirections(p)
	if blue == "" || red == "" {
		t.Fatalf("missing directions: blue=%q red=%q", blue, red)
	}
	if Opposite(blue) != red {
		t.Errorf("blue %s and red %s must be opposite", blue, red)
	}

	// The pro motion keeps its own table direction.
	if want := Separation(pro, p, model.Blue); blue != want {
		t.Errorf("pro direction %s, want table value %s", blue, want)
	}
}

// Swapping which color carries the pro motion must still produce a
// mutually opposite pair, anchored on the pro motion's table entry.
func TestLetterI_SymmetricUnderColorSwap(t *testing.T) {
	pro := motionAt(model.MotionPro, model.South, model.OrientationOut)
	anti := motionAt(model.MotionAnti, model.South, model.OrientationOut)

	p1 := &model.Pictograph{Letter: "I", GridMode: model.GridDiamond, Blue: pro, Red: anti}
	b1, r1 := LetterIDirections(p1)

	p2 := &model.Pictograph{Letter: "I", GridMode: model.GridDiamond, Blue: anti, Red: pro}
	b2, r2 := LetterIDirections(p2)

	if Opposite(b1) != r1 || Opposite(b2) != r2 {
		t.Fatalf("both orderings must yield opposite pairs: (%s,%s) (%s,%s)", b1, r1, b2, r2)
	}
	// The pro-carrying color anchors in both orderings.
	if b1 != Separation(pro, p1, model.Blue) {
		t.Errorf("blue-pro ordering: pro lost its table direction")
	}
	if r2 != Separation(pro, p2, model.Red) {
		t.Errorf("red-pro ordering: pro lost its table direction")
	}
}

func TestLetterI_BothPro_RedPrecedence(t *testing.T) {
	bluePro := motionAt(model.MotionPro, model.West, model.OrientationIn)
	redPro := motionAt(model.MotionPro, model.West, model.OrientationIn)

	p := &model.Pictograph{Letter: "I", GridMode: model.GridDiamond, Blue: bluePro, Red: redPro}
	blue, red := LetterIDirections(p)

	if red != Separation(redPro, p, model.Red) {
		t.Errorf("red must anchor when both motions are pro")
	}
	if blue != Opposite(red) {
		t.Errorf("blue %s must oppose red %s", blue, red)
	}
}

func TestLetterI_NeitherPro_IndependentLookups(t *testing.T) {
	static := motionAt(model.MotionStatic, model.North, model.OrientationIn)
	dash := motionAt(model.MotionDash, model.East, model.OrientationIn)

	p := &model.Pictograph{Letter: "I", GridMode: model.GridDiamond, Blue: static, Red: dash}
	blue, red := LetterIDirections(p)

	if blue != Separation(static, p, model.Blue) {
		t.Errorf("blue should use its own table direction, got %s", blue)
	}
	if red != Separation(dash, p, model.Red) {
		t.Errorf("red should use its own table direction, got %s", red)
	}
}

func TestLetterI_NilInputs(t *testing.T) {
	blue, red := LetterIDirections(nil)
	if blue != "" || red != "" {
		t.Errorf("nil pictograph should yield zero directions")
	}

	p := &model.Pictograph{Letter: "I", GridMode: model.GridDiamond}
	blue, red = LetterIDirections(p)
	if blue != "" || red != "" {
		t.Errorf("missing motions should yield zero directions, got %q/%q", blue, red)
	}
}
