package rotation

import (
	"math"
	"testing"

	"github.com/tkalab/tka/internal/model"
)

func motion(mt model.MotionType, end model.Location, turns float64) *model.Motion {
	return &model.Motion{MotionType: mt, EndLoc: end, Turns: turns}
}

func TestPropAngle_BaseTable(t *testing.T) {
	tests := []struct {
		ori  model.Orientation
		loc  model.Location
		want float64
	}{
		{model.OrientationIn, model.North, 90},
		{model.OrientationIn, model.South, 270},
		{model.OrientationIn, model.West, 0},
		{model.OrientationIn, model.East, 180},
		{model.OrientationOut, model.North, 270},
		{model.OrientationOut, model.South, 90},
		{model.OrientationOut, model.West, 180},
		{model.OrientationOut, model.East, 0},
	}
	for _, tt := range tests {
		got := PropAngle(motion(model.MotionStatic, tt.loc, 0), tt.ori)
		if got != tt.want {
			t.Errorf("PropAngle(%s, %s) = %v, want %v", tt.ori, tt.loc, got, tt.want)
		}
	}
}

// The out row must be the in row rotated by a half circle at every covered
// location.
func TestPropAngle_TableSymmetry(t *testing.T) {
	for _, loc := range []model.Location{model.North, model.South, model.East, model.West} {
		in := PropAngle(motion(model.MotionStatic, loc, 0), model.OrientationIn)
		out := PropAngle(motion(model.MotionStatic, loc, 0), model.OrientationOut)
		if out != math.Mod(in+180, 360) {
			t.Errorf("loc %s: out angle %v != in angle %v + 180 mod 360", loc, out, in)
		}
	}
}

func TestPropAngle_UnmappedLocation(t *testing.T) {
	for _, loc := range []model.Location{model.Northeast, model.Southeast, model.Southwest, model.Northwest} {
		if got := PropAngle(motion(model.MotionPro, loc, 0), model.OrientationIn); got != 0 {
			t.Errorf("diagonal %s should yield 0, got %v", loc, got)
		}
	}
}

func TestPropAngle_NilMotion(t *testing.T) {
	if got := PropAngle(nil, model.OrientationIn); got != 0 {
		t.Errorf("nil motion should yield 0, got %v", got)
	}
}

func TestEndOrientation_Propagation(t *testing.T) {
	tests := []struct {
		name  string
		mt    model.MotionType
		turns float64
		want  model.Orientation
	}{
		{"pro 0 preserves", model.MotionPro, 0, model.OrientationIn},
		{"pro 0.5 flips", model.MotionPro, 0.5, model.OrientationOut},
		{"pro 1 flips", model.MotionPro, 1, model.OrientationOut},
		// Whole-turn flip and half flip cancel.
		{"pro 1.5 cancels", model.MotionPro, 1.5, model.OrientationIn},
		{"pro 2 preserves", model.MotionPro, 2, model.OrientationIn},
		{"pro 3 flips", model.MotionPro, 3, model.OrientationOut},
		{"static 1 flips", model.MotionStatic, 1, model.OrientationOut},
		// Anti/dash invert the pro/static parity.
		{"anti 0 flips", model.MotionAnti, 0, model.OrientationOut},
		{"anti 0.5 cancels", model.MotionAnti, 0.5, model.OrientationIn},
		{"anti 1 preserves", model.MotionAnti, 1, model.OrientationIn},
		{"anti 1.5 flips", model.MotionAnti, 1.5, model.OrientationOut},
		{"dash 2 flips", model.MotionDash, 2, model.OrientationOut},
		// Out-of-domain turns skip propagation.
		{"negative turns", model.MotionPro, -1, model.OrientationIn},
		{"too many turns", model.MotionPro, 3.5, model.OrientationIn},
		{"quarter turns", model.MotionPro, 1.25, model.OrientationIn},
		// Floats never propagate.
		{"float", model.MotionFloat, 1, model.OrientationIn},
	}
	for _, tt := range tests {
		got := EndOrientation(motion(tt.mt, model.North, tt.turns), model.OrientationIn)
		if got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestEndOrientation_NonRadialReference(t *testing.T) {
	got := EndOrientation(motion(model.MotionPro, model.North, 1), model.OrientationClock)
	if got != model.OrientationCounter {
		t.Errorf("clock reference with one turn should flip to counter, got %s", got)
	}
}

func TestPropAngle_Deterministic(t *testing.T) {
	m := motion(model.MotionPro, model.North, 2.5)
	first := PropAngle(m, model.OrientationIn)
	for i := 0; i < 10; i++ {
		if got := PropAngle(m, model.OrientationIn); got != first {
			t.Fatalf("call %d: got %v, want %v", i, got, first)
		}
	}
}
