// Package determine classifies two-prop configurations into letters by
// matching them against a reference dataset.
package determine

import (
	"github.com/tkalab/tka/internal/dataset"
	"github.com/tkalab/tka/internal/model"
)

// Strategy matches configurations of one motion-type shape against the
// dataset. AppliesTo gates on the live configuration only; Score scans the
// dataset and reports the first matching letter.
type Strategy interface {
	Name() string
	AppliesTo(p *model.Pictograph) bool
	Score(p *model.Pictograph, ds dataset.Provider) (letter string, confidence float64, ok bool)
}

// Service runs a fixed, ordered strategy list over a read-only dataset.
type Service struct {
	data       dataset.Provider
	strategies []Strategy
}

// NewService builds the service with the built-in strategy order:
// dual-float, non-hybrid shift, hybrid shift, then standard non-float
// matching.
func NewService(data dataset.Provider) *Service {
	return &Service{
		data: data,
		strategies: []Strategy{
			dualFloatStrategy{},
			nonHybridShiftStrategy{},
			hybridShiftStrategy{},
			standardStrategy{},
		},
	}
}

// DetermineLetter classifies a configuration. The first strategy that both
// applies and finds a dataset match wins. No match is a normal outcome and
// yields an unsuccessful result, never a panic.
func (s *Service) DetermineLetter(p *model.Pictograph) model.DeterminationResult {
	if s == nil || s.data == nil || p == nil || p.Blue == nil || p.Red == nil {
		return model.DeterminationResult{}
	}

	for _, st := range s.strategies {
		if !st.AppliesTo(p) {
			continue
		}
		if letter, conf, ok := st.Score(p, s.data); ok {
			return model.DeterminationResult{
				Successful: true,
				Letter:     letter,
				Confidence: conf,
				Strategy:   st.Name(),
			}
		}
	}
	return model.DeterminationResult{}
}
