package determine

import (
	"github.com/tkalab/tka/internal/compare"
	"github.com/tkalab/tka/internal/dataset"
	"github.com/tkalab/tka/internal/model"
)

// Confidence levels reflect match specificity: exact non-float matching is
// authoritative, shift matching goes through prefloat resolution, and
// dual-float matching is inherently looser (unresolved floats compare
// type-only).
const (
	confidenceStandard  = 1.0
	confidenceNonHybrid = 0.95
	confidenceHybrid    = 0.9
	confidenceDualFloat = 0.85
)

// scan walks the dataset in letter order and returns the first entry the
// comparator accepts. accept pre-filters entries by shape; nil accepts all.
func scan(p *model.Pictograph, ds dataset.Provider, ctx compare.Context, accept func(*model.Pictograph) bool) (string, bool) {
	for _, letter := range ds.Letters() {
		for _, entry := range ds.Entries(letter) {
			if accept != nil && !accept(entry) {
				continue
			}
			if compare.Configs(p, entry, ctx) == 1.0 {
				return letter, true
			}
		}
	}
	return "", false
}

func isShift(t model.MotionType) bool {
	return t == model.MotionPro || t == model.MotionAnti
}

// floatAndShift splits the two motions into the float one and the shift
// one, in that order. ok is false unless exactly one motion is a float and
// the other is pro or anti.
func floatAndShift(p *model.Pictograph) (fl, shift *model.Motion, ok bool) {
	b, r := p.Blue, p.Red
	if b == nil || r == nil {
		return nil, nil, false
	}
	switch {
	case b.MotionType == model.MotionFloat && isShift(r.MotionType):
		return b, r, true
	case r.MotionType == model.MotionFloat && isShift(b.MotionType):
		return r, b, true
	}
	return nil, nil, false
}

// dualFloatStrategy matches configurations where both motions float,
// against entries where both reference motions also float.
type dualFloatStrategy struct{}

func (dualFloatStrategy) Name() string { return "dual_float" }

func (dualFloatStrategy) AppliesTo(p *model.Pictograph) bool {
	return p.Blue != nil && p.Red != nil &&
		p.Blue.MotionType == model.MotionFloat &&
		p.Red.MotionType == model.MotionFloat
}

func (dualFloatStrategy) Score(p *model.Pictograph, ds dataset.Provider) (string, float64, bool) {
	letter, ok := scan(p, ds, compare.Context{}, func(e *model.Pictograph) bool {
		return e.Blue != nil && e.Red != nil &&
			e.Blue.MotionType == model.MotionFloat &&
			e.Red.MotionType == model.MotionFloat
	})
	return letter, confidenceDualFloat, ok
}

// nonHybridShiftStrategy matches one-float configurations where the float
// resolves to the same motion type as its shift partner.
type nonHybridShiftStrategy struct{}

func (nonHybridShiftStrategy) Name() string { return "non_hybrid_shift" }

func (nonHybridShiftStrategy) AppliesTo(p *model.Pictograph) bool {
	fl, shift, ok := floatAndShift(p)
	return ok && compare.EffectiveMotionType(fl, shift) == shift.MotionType
}

func (nonHybridShiftStrategy) Score(p *model.Pictograph, ds dataset.Provider) (string, float64, bool) {
	letter, ok := scan(p, ds, compare.Context{}, nil)
	return letter, confidenceNonHybrid, ok
}

// hybridShiftStrategy matches one-float configurations where the float
// resolves to the opposite shift type from its partner.
type hybridShiftStrategy struct{}

func (hybridShiftStrategy) Name() string { return "hybrid_shift" }

func (hybridShiftStrategy) AppliesTo(p *model.Pictograph) bool {
	fl, shift, ok := floatAndShift(p)
	return ok && compare.EffectiveMotionType(fl, shift) != shift.MotionType
}

func (hybridShiftStrategy) Score(p *model.Pictograph, ds dataset.Provider) (string, float64, bool) {
	letter, ok := scan(p, ds, compare.Context{}, nil)
	return letter, confidenceHybrid, ok
}

// standardStrategy matches configurations with no float motion at all.
type standardStrategy struct{}

func (standardStrategy) Name() string { return "standard" }

func (standardStrategy) AppliesTo(p *model.Pictograph) bool {
	return p.Blue != nil && p.Red != nil &&
		p.Blue.MotionType != model.MotionFloat &&
		p.Red.MotionType != model.MotionFloat
}

func (standardStrategy) Score(p *model.Pictograph, ds dataset.Provider) (string, float64, bool) {
	letter, ok := scan(p, ds, compare.Context{}, nil)
	return letter, confidenceStandard, ok
}
