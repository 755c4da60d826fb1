package hpt

import (
	"errors"

	"github.com/montanaflynn/stats"
)

// testModel stands in for a trained model; ID identifies the Evaluate call
// that produced it.
type testModel struct {
	ID   int
	Args []any
}

// scriptedEvaluator returns preset objectives in order and records every
// argument list it receives.
type scriptedEvaluator struct {
	objectives []float64
	errs       map[int]error // call index -> error

	calls   [][]any
	current *testModel
	taken   int
}

func (e *scriptedEvaluator) Evaluate(args ...any) (float64, error) {
	call := len(e.calls)
	e.calls = append(e.calls, append([]any(nil), args...))
	if err, ok := e.errs[call]; ok {
		return 0, err
	}
	e.current = &testModel{ID: call, Args: args}
	if call < len(e.objectives) {
		return e.objectives[call], nil
	}
	return 0, errors.New("scriptedEvaluator: out of objectives")
}

func (e *scriptedEvaluator) Model() *testModel {
	m := e.current
	e.current = nil
	e.taken++
	return m
}

func (e *scriptedEvaluator) lastArgs() []any {
	if len(e.calls) == 0 {
		return nil
	}
	return e.calls[len(e.calls)-1]
}

// kFoldEvaluator mimics a k-fold pass over a regularized regression:
// args are (folds int, lambda float64, scale float64) and each fold's loss is
// a shifted quadratic around target. The objective is the mean fold loss.
type kFoldEvaluator struct {
	target float64
	last   *testModel
	runs   int
}

var errBadFolds = errors.New("kFoldEvaluator: folds must be positive")

func (e *kFoldEvaluator) Evaluate(args ...any) (float64, error) {
	folds, ok := args[0].(int)
	if !ok || folds <= 0 {
		return 0, errBadFolds
	}
	lambda := args[1].(float64)
	scale := args[2].(float64)

	losses := make([]float64, folds)
	for k := range losses {
		d := lambda - e.target
		losses[k] = scale*d*d + float64(k)*0.01
	}
	mean, err := stats.Mean(losses)
	if err != nil {
		return 0, err
	}

	e.runs++
	e.last = &testModel{ID: e.runs, Args: args}
	return mean, nil
}

func (e *kFoldEvaluator) Model() *testModel {
	m := e.last
	e.last = nil
	return m
}
