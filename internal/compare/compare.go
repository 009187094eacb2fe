// Package compare matches live two-prop configurations against reference
// dataset entries.
package compare

import "github.com/tkalab/tka/internal/model"

// Context carries comparison options.
type Context struct {
	// SwapPropRotDir reverses the candidate side's rotation directions
	// before equality checks. Used by strategies matching mirrored entries.
	SwapPropRotDir bool
}

// AttributeResult is a per-field comparison breakdown for one motion pair.
type AttributeResult struct {
	LocationsMatch    bool `json:"locations_match"`
	OrientationsMatch bool `json:"orientations_match"`
	MotionTypesMatch  bool `json:"motion_types_match"`
	PropRotDirsMatch  bool `json:"prop_rot_dirs_match"`
	PrefloatMatch     bool `json:"prefloat_attributes_match"`
	OverallMatch      bool `json:"overall_match"`
}

// EffectiveMotionType resolves what a float motion "was". The recorded
// prefloat type wins; with no record the partner's shift type seeds it.
// A float with no prefloat and no shift partner stays float, which makes
// comparison against it type-only. Non-float motions resolve to their own
// type.
func EffectiveMotionType(m, partner *model.Motion) model.MotionType {
	if m == nil {
		return ""
	}
	if m.MotionType != model.MotionFloat {
		return m.MotionType
	}
	if m.PrefloatMotionType != "" {
		return m.PrefloatMotionType
	}
	if partner != nil && (partner.MotionType == model.MotionPro || partner.MotionType == model.MotionAnti) {
		return partner.MotionType
	}
	return model.MotionFloat
}

// ReversePropRotDir swaps cw and ccw. No-rotation and unknown values pass
// through unchanged.
func ReversePropRotDir(d model.RotationDirection) model.RotationDirection {
	switch d {
	case model.RotationClockwise:
		return model.RotationCounterClockwise
	case model.RotationCounterClockwise:
		return model.RotationClockwise
	}
	return d
}

// ApplyDirectionInversion reverses a rotation direction when the dataset
// direction label is "opp"; any other label leaves it unchanged.
func ApplyDirectionInversion(label string, d model.RotationDirection) model.RotationDirection {
	if label == "opp" {
		return ReversePropRotDir(d)
	}
	return d
}

// Configs compares a live configuration against a candidate. 1.0 means
// match, 0.0 no match; the score is typed float to leave room for
// graduated confidence later.
//
// Matching start/end positions plus pairwise-equal effective motion types
// short-circuit to a match without attribute comparison. Otherwise every
// attribute of both colors must be exactly equal.
func Configs(live, candidate *model.Pictograph, ctx Context) float64 {
	if live == nil || candidate == nil {
		return 0
	}

	if live.StartPos != "" && live.StartPos == candidate.StartPos &&
		live.EndPos != "" && live.EndPos == candidate.EndPos &&
		EffectiveMotionType(live.Blue, live.Red) == EffectiveMotionType(candidate.Blue, candidate.Red) &&
		EffectiveMotionType(live.Red, live.Blue) == EffectiveMotionType(candidate.Red, candidate.Blue) {
		return 1.0
	}

	if Attributes(live.Blue, candidate.Blue, ctx).OverallMatch &&
		Attributes(live.Red, candidate.Red, ctx).OverallMatch {
		return 1.0
	}
	return 0
}

// Attributes compares one motion pair field by field. The candidate's
// rotation directions are reversed first when ctx.SwapPropRotDir is set.
func Attributes(m, cand *model.Motion, ctx Context) AttributeResult {
	if m == nil || cand == nil {
		// Two absent motions agree; one absent motion cannot match.
		both := m == nil && cand == nil
		return AttributeResult{
			LocationsMatch:    both,
			OrientationsMatch: both,
			MotionTypesMatch:  both,
			PropRotDirsMatch:  both,
			PrefloatMatch:     both,
			OverallMatch:      both,
		}
	}

	candRot := cand.RotationDirection
	candPrefloatRot := cand.PrefloatRotationDirection
	if ctx.SwapPropRotDir {
		candRot = ReversePropRotDir(candRot)
		candPrefloatRot = ReversePropRotDir(candPrefloatRot)
	}

	r := AttributeResult{
		LocationsMatch:    m.StartLoc == cand.StartLoc && m.EndLoc == cand.EndLoc,
		OrientationsMatch: m.StartOri == cand.StartOri && m.EndOri == cand.EndOri,
		MotionTypesMatch:  m.MotionType == cand.MotionType && m.Turns == cand.Turns,
		PropRotDirsMatch:  m.RotationDirection == candRot,
		PrefloatMatch: m.PrefloatMotionType == cand.PrefloatMotionType &&
			m.PrefloatRotationDirection == candPrefloatRot,
	}
	r.OverallMatch = r.LocationsMatch && r.OrientationsMatch &&
		r.MotionTypesMatch && r.PropRotDirsMatch && r.PrefloatMatch
	return r
}
