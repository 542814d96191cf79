package agent

import (
	"fmt"
	"math"
)

// Validate checks the parameter set in stages and returns the first
// violation, wrapped in ErrConfig. It never mutates the agent.
//
// Complexity: O(len(DispersalNeighbors)).
func (a *Agent) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: agent is nil", ErrConfig)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrConfig)
	}
	if err := a.validateDispersal(); err != nil {
		return err
	}
	if err := a.validateThresholds(); err != nil {
		return err
	}
	return a.validateCoefficients()
}

// validateDispersal: positive finite rate, known template, non-empty kernel.
// A percolation kernel must contain at least one non-zero offset or the
// flood fill can never leave its epicenter.
func (a *Agent) validateDispersal() error {
	if !(a.DispersalRate > 0) || math.IsInf(a.DispersalRate, 0) {
		return fmt.Errorf("%w: dispersal rate must be positive, got %v", ErrConfig, a.DispersalRate)
	}
	switch a.DispersalTemplate {
	case FixedRadius, Percolation:
	default:
		return fmt.Errorf("%w: %w: %v", ErrConfig, ErrUnknownTemplate, a.DispersalTemplate)
	}
	if len(a.DispersalNeighbors) == 0 {
		return fmt.Errorf("%w: dispersal kernel is empty", ErrConfig)
	}
	if a.DispersalTemplate == Percolation {
		for _, off := range a.DispersalNeighbors {
			if off.DRow != 0 || off.DCol != 0 {
				return nil
			}
		}
		return fmt.Errorf("%w: percolation kernel has no non-zero offset", ErrConfig)
	}
	return nil
}

func (a *Agent) validateThresholds() error {
	if math.IsNaN(a.EpidemicThresh) {
		return fmt.Errorf("%w: epidemic threshold is NaN", ErrConfig)
	}
	if math.IsNaN(a.OutbreakEpicenterThresh) {
		return fmt.Errorf("%w: outbreak epicenter threshold is NaN", ErrConfig)
	}
	return nil
}

func (a *Agent) validateCoefficients() error {
	coeffs := []struct {
		name string
		v    float64
	}{
		{"outbreak epicenter coefficient", a.OutbreakEpicenterCoeff},
		{"seed epicenter coefficient", a.SeedEpicenterCoeff},
	}
	for _, c := range coeffs {
		if c.v < 0 || math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return fmt.Errorf("%w: %s must be finite and non-negative, got %v", ErrConfig, c.name, c.v)
		}
	}
	if a.SeedEpicenterMax < 0 {
		return fmt.Errorf("%w: seed epicenter max must be non-negative, got %d", ErrConfig, a.SeedEpicenterMax)
	}
	if a.EpicenterNum < 0 {
		return fmt.Errorf("%w: epicenter count must be non-negative, got %d", ErrConfig, a.EpicenterNum)
	}
	return nil
}
