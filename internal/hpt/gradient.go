package hpt

import (
	"fmt"
	"math"
)

// GradientConfig controls the step size of the finite-difference gradient.
type GradientConfig struct {
	// RelativeDelta scales the step with the magnitude of each parameter.
	// Example: 0.01 = a step of 1% of the parameter value
	RelativeDelta float64

	// MinDelta is the smallest step used, so parameters near zero still move.
	MinDelta float64
}

// DefaultGradientConfig returns the step sizes used by NewCVFunction.
func DefaultGradientConfig() GradientConfig {
	return GradientConfig{
		RelativeDelta: 0.01,
		MinDelta:      1e-10,
	}
}

// Validate checks that both deltas are positive and finite.
func (c GradientConfig) Validate() error {
	if !(c.RelativeDelta > 0) || math.IsInf(c.RelativeDelta, 0) {
		return &ConfigError{Field: "gradient relative delta", Index: -1, Reason: fmt.Sprintf("must be positive, got %g", c.RelativeDelta)}
	}
	if !(c.MinDelta > 0) || math.IsInf(c.MinDelta, 0) {
		return &ConfigError{Field: "gradient min delta", Index: -1, Reason: fmt.Sprintf("must be positive, got %g", c.MinDelta)}
	}
	return nil
}

// Gradient approximates the gradient of the objective at params with forward
// differences and writes it to grad. Every probe is a full Evaluate, so the
// best model is updated along the way. params is not modified.
func (f *CVFunction[M]) Gradient(params, grad []float64) error {
	if len(grad) != f.NumFree() {
		return &LengthMismatchError{What: "gradient vector", Expected: f.NumFree(), Actual: len(grad)}
	}

	objective, err := f.Evaluate(params)
	if err != nil {
		return err
	}

	probe := append([]float64(nil), params...)
	for i := range probe {
		delta := math.Max(math.Abs(params[i])*f.gradient.RelativeDelta, f.gradient.MinDelta)
		probe[i] = params[i] + delta

		shifted, err := f.Evaluate(probe)
		if err != nil {
			return fmt.Errorf("gradient probe for parameter %d: %w", i, err)
		}
		grad[i] = (shifted - objective) / delta
		probe[i] = params[i]
	}
	return nil
}
