package model

import "fmt"

// Pictograph is an immutable snapshot of a two-prop configuration.
// Letter is empty until determination has classified the configuration.
type Pictograph struct {
	Letter   string   `json:"letter,omitempty"`
	GridMode GridMode `json:"grid_mode"`
	StartPos string   `json:"start_pos,omitempty"`
	EndPos   string   `json:"end_pos,omitempty"`
	Blue     *Motion  `json:"blue_attributes,omitempty"`
	Red      *Motion  `json:"red_attributes,omitempty"`
}

// Motion returns the motion for the given color, or nil.
func (p *Pictograph) Motion(c Color) *Motion {
	switch c {
	case Blue:
		return p.Blue
	case Red:
		return p.Red
	}
	return nil
}

// Partner returns the other color's motion, or nil.
func (p *Pictograph) Partner(c Color) *Motion {
	switch c {
	case Blue:
		return p.Red
	case Red:
		return p.Blue
	}
	return nil
}

// Validate checks the grid mode and both motions. Missing motions are
// allowed here; operations that need both handle absence by returning
// neutral results.
func (p *Pictograph) Validate() error {
	if !ValidGridModes[p.GridMode] {
		return fmt.Errorf("invalid grid_mode %q", p.GridMode)
	}
	if p.Blue != nil {
		if err := p.Blue.Validate(); err != nil {
			return fmt.Errorf("blue: %w", err)
		}
	}
	if p.Red != nil {
		if err := p.Red.Validate(); err != nil {
			return fmt.Errorf("red: %w", err)
		}
	}
	return nil
}

// DeterminationResult is the outcome of letter determination. An
// unsuccessful result is a normal outcome, not an error: Letter,
// Confidence and Strategy are zero-valued when Successful is false.
type DeterminationResult struct {
	Successful bool    `json:"successful"`
	Letter     string  `json:"letter,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Strategy   string  `json:"strategy,omitempty"`
}
