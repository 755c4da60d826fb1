package opt

import (
	"fmt"
	"log/slog"
	"math"
)

// Optimizer defines an optimization algorithm interface
type Optimizer interface {
	// Run executes the optimization
	// eval: objective function to minimize
	// lower, upper: per-dimension parameter bounds
	// dim: dimensionality of parameter space
	// Returns: best parameters and best cost
	Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64)
}

// ObjectiveFunc is an objective that can fail, such as a cross-validation
// run with an invalid hyperparameter combination.
type ObjectiveFunc func(x []float64) (float64, error)

// Penalize turns f into a cost function an Optimizer can minimize.
// Failed candidates cost +Inf so the optimizer ranks them last. onErr, if not
// nil, receives every failure; otherwise failures are logged.
func Penalize(f ObjectiveFunc, onErr func(x []float64, err error)) func([]float64) float64 {
	return func(x []float64) float64 {
		cost, err := f(x)
		if err != nil {
			if onErr != nil {
				onErr(x, err)
			} else {
				slog.Warn("Objective evaluation failed", "params", x, "error", err)
			}
			return math.Inf(1)
		}
		return cost
	}
}

// BoundsError describes bounds that do not fit the search dimension.
type BoundsError struct {
	Dim    int
	Reason string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("invalid bounds for %d dimensions: %s", e.Dim, e.Reason)
}

// CheckBounds verifies that lower and upper have dim entries and describe a
// non-empty box.
func CheckBounds(lower, upper []float64, dim int) error {
	if dim <= 0 {
		return &BoundsError{Dim: dim, Reason: "dimension must be positive"}
	}
	if len(lower) != dim || len(upper) != dim {
		return &BoundsError{Dim: dim, Reason: fmt.Sprintf("got %d lower and %d upper bounds", len(lower), len(upper))}
	}
	for i := range lower {
		if math.IsNaN(lower[i]) || math.IsNaN(upper[i]) || lower[i] > upper[i] {
			return &BoundsError{Dim: dim, Reason: fmt.Sprintf("dimension %d has lower %g above upper %g", i, lower[i], upper[i])}
		}
	}
	return nil
}
