// Package hpt adapts a cross-validation evaluator to the flat parameter
// vector interface numeric optimizers minimize.
package hpt

import (
	"fmt"
	"log/slog"
)

// Evaluator runs one cross-validation pass over a fully resolved argument list.
// Lower objectives are better.
type Evaluator[M any] interface {
	// Evaluate trains and scores a model with the given arguments and keeps
	// the trained model until Model is called or the next Evaluate.
	Evaluate(args ...any) (float64, error)

	// Model hands over the model trained by the last Evaluate. The evaluator
	// must not use its copy afterwards.
	Model() M
}

// Config holds construction options for a CVFunction.
type Config struct {
	// TotalArgs is the number of bound arguments plus free parameters.
	TotalArgs int

	// Bound lists the fixed arguments in ascending slot order.
	Bound []BoundArg

	Gradient GradientConfig
}

// CVFunction merges bound arguments with optimizer parameters, evaluates them
// and keeps the model with the lowest objective seen so far.
//
// A CVFunction is not safe for concurrent use. Run parallel searches with one
// CVFunction each and compare their results afterwards.
type CVFunction[M any] struct {
	cv        Evaluator[M]
	bound     []BoundArg
	totalArgs int
	gradient  GradientConfig

	hasBest       bool
	bestObjective float64
	bestModel     M
	evaluations   int
}

// NewCVFunction creates an adapter for cv with totalArgs argument slots, of
// which the bound arguments occupy the slots they name.
func NewCVFunction[M any](cv Evaluator[M], totalArgs int, bound ...BoundArg) (*CVFunction[M], error) {
	return NewCVFunctionWithConfig(cv, Config{
		TotalArgs: totalArgs,
		Bound:     bound,
		Gradient:  DefaultGradientConfig(),
	})
}

// NewCVFunctionWithConfig creates an adapter from an explicit Config.
func NewCVFunctionWithConfig[M any](cv Evaluator[M], config Config) (*CVFunction[M], error) {
	if cv == nil {
		return nil, &ConfigError{Field: "evaluator", Index: -1, Reason: "cannot be nil"}
	}
	if err := validateBound(config.TotalArgs, config.Bound); err != nil {
		return nil, err
	}
	if err := config.Gradient.Validate(); err != nil {
		return nil, err
	}

	return &CVFunction[M]{
		cv:        cv,
		bound:     append([]BoundArg(nil), config.Bound...),
		totalArgs: config.TotalArgs,
		gradient:  config.Gradient,
	}, nil
}

func validateBound(totalArgs int, bound []BoundArg) error {
	if totalArgs < 0 {
		return &ConfigError{Field: "total argument count", Index: -1, Reason: "cannot be negative"}
	}
	if len(bound) > totalArgs {
		return &ConfigError{
			Field:  "total argument count",
			Index:  -1,
			Reason: fmt.Sprintf("is %d but %d bound arguments were given", totalArgs, len(bound)),
		}
	}

	prev := -1
	for i, b := range bound {
		if b.index < 0 || b.index >= totalArgs {
			return &ConfigError{
				Field:  "slot",
				Index:  i,
				Reason: fmt.Sprintf("%d is outside [0, %d)", b.index, totalArgs),
			}
		}
		if b.index == prev {
			return &ConfigError{Field: "slot", Index: i, Reason: fmt.Sprintf("%d is already bound", b.index)}
		}
		if b.index < prev {
			return &ConfigError{
				Field:  "slot",
				Index:  i,
				Reason: fmt.Sprintf("%d follows slot %d; slots must be ascending", b.index, prev),
			}
		}
		prev = b.index
	}
	return nil
}

// TotalArgs returns the number of argument slots passed to the evaluator.
func (f *CVFunction[M]) TotalArgs() int {
	return f.totalArgs
}

// NumFree returns the expected length of the parameter vector.
func (f *CVFunction[M]) NumFree() int {
	return f.totalArgs - len(f.bound)
}

// Args builds the full argument list for params. Bound arguments land in
// their slots and the remaining slots take params in order, as float64.
func (f *CVFunction[M]) Args(params []float64) ([]any, error) {
	if len(params) != f.NumFree() {
		return nil, &LengthMismatchError{What: "parameter vector", Expected: f.NumFree(), Actual: len(params)}
	}

	args := make([]any, f.totalArgs)
	b, p := 0, 0
	for s := range args {
		if b < len(f.bound) && f.bound[b].index == s {
			args[s] = f.bound[b].value
			b++
			continue
		}
		args[s] = params[p]
		p++
	}
	return args, nil
}

// Evaluate runs the evaluator on the merged arguments and returns its
// objective. The trained model is kept when it is the first one or when its
// objective is strictly lower than the best so far. Evaluator errors are
// returned as is and leave the best model untouched.
func (f *CVFunction[M]) Evaluate(params []float64) (float64, error) {
	args, err := f.Args(params)
	if err != nil {
		return 0, err
	}

	objective, err := f.cv.Evaluate(args...)
	if err != nil {
		return 0, err
	}
	f.evaluations++

	slog.Debug("Cross-validation evaluated", "objective", objective, "evaluations", f.evaluations)

	if !f.hasBest || objective < f.bestObjective {
		slog.Info("Best objective improved",
			"objective", objective,
			"previous", f.bestObjectiveOrNil(),
			"evaluations", f.evaluations,
		)
		f.bestObjective = objective
		f.bestModel = f.cv.Model()
		f.hasBest = true
	}

	return objective, nil
}

func (f *CVFunction[M]) bestObjectiveOrNil() any {
	if !f.hasBest {
		return nil
	}
	return f.bestObjective
}

// BestObjective returns the lowest objective seen. ok is false before the
// first successful evaluation.
func (f *CVFunction[M]) BestObjective() (objective float64, ok bool) {
	return f.bestObjective, f.hasBest
}

// BestModel returns the model that produced BestObjective.
func (f *CVFunction[M]) BestModel() (model M, ok bool) {
	return f.bestModel, f.hasBest
}

// Evaluations returns the number of successful evaluator calls.
func (f *CVFunction[M]) Evaluations() int {
	return f.evaluations
}
