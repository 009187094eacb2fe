package model

import "testing"

func TestOppositeDirection_Involution(t *testing.T) {
	dirs := []SeparationDirection{
		DirLeft, DirRight, DirUp, DirDown,
		DirUpLeft, DirUpRight, DirDownLeft, DirDownRight,
	}
	for _, d := range dirs {
		if got := OppositeDirection(OppositeDirection(d)); got != d {
			t.Errorf("opposite(opposite(%s)) = %s, want %s", d, got, d)
		}
		if OppositeDirection(d) == d {
			t.Errorf("opposite(%s) must differ from input", d)
		}
	}
}

func TestOppositeDirection_Pairs(t *testing.T) {
	pairs := map[SeparationDirection]SeparationDirection{
		DirLeft:     DirRight,
		DirUp:       DirDown,
		DirUpLeft:   DirDownRight,
		DirUpRight:  DirDownLeft,
	}
	for a, b := range pairs {
		if got := OppositeDirection(a); got != b {
			t.Errorf("opposite(%s) = %s, want %s", a, got, b)
		}
	}
}

func TestOppositeDirection_UnknownIdentity(t *testing.T) {
	for _, d := range []SeparationDirection{"", "sideways", "diagonal"} {
		if got := OppositeDirection(d); got != d {
			t.Errorf("opposite(%q) = %q, want identity", d, got)
		}
	}
}
