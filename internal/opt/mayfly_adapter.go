package opt

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// MayflyAdapter wraps the external Mayfly library to conform to our Optimizer interface
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a new Mayfly optimizer adapter.
// popSize must be at least 20 for mayfly v0.1.0.
func NewMayfly(maxIters, popSize int, seed int64) Optimizer {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// Run executes the Mayfly optimization using the external library.
// Mayfly only takes scalar bounds, so the search runs on the unit cube and
// each coordinate is mapped onto [lower[i], upper[i]] before eval sees it.
func (m *MayflyAdapter) Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64) {
	if err := CheckBounds(lower, upper, dim); err != nil {
		slog.Error("Mayfly run rejected", "error", err)
		return nil, math.Inf(1)
	}

	toBox := func(unit []float64) []float64 {
		scaled := make([]float64, dim)
		for i, u := range unit {
			scaled[i] = lower[i] + clamp(u, 0, 1)*(upper[i]-lower[i])
		}
		return scaled
	}

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = func(unit []float64) float64 {
		return eval(toBox(unit))
	}
	config.ProblemSize = dim
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize
	config.LowerBound = 0
	config.UpperBound = 1

	// Set random seed for reproducibility
	config.Rand = rand.New(rand.NewSource(m.seed))

	slog.Info("Starting mayfly search", "dim", dim, "iters", m.maxIters, "pop", m.popSize, "seed", m.seed)

	result, err := mayfly.Optimize(config)
	if err != nil {
		// Fall back to the centre of the box
		slog.Error("Mayfly optimization failed", "error", err)
		centre := make([]float64, dim)
		for i := range centre {
			centre[i] = 0.5
		}
		best := toBox(centre)
		return best, eval(best)
	}

	best := toBox(result.GlobalBest.Position)
	slog.Info("Mayfly search complete", "best_cost", result.GlobalBest.Cost)

	return best, result.GlobalBest.Cost
}

func clamp(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
