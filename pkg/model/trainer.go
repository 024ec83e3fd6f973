package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"lindisc/pkg/core"
)

// LabeledSet pairs bias-augmented samples with their one-hot targets.
type LabeledSet struct {
	Samples [][]float64
	Targets [][]float64
}

func (s LabeledSet) validate(name string, width, classes int) error {
	if len(s.Samples) != len(s.Targets) {
		return fmt.Errorf("%s: %w: %d samples, %d targets", name, core.ErrDimensionMismatch, len(s.Samples), len(s.Targets))
	}
	if err := core.CheckWidth(s.Samples, width); err != nil {
		return fmt.Errorf("%s samples: %w", name, err)
	}
	if err := core.CheckWidth(s.Targets, classes); err != nil {
		return fmt.Errorf("%s targets: %w", name, err)
	}
	return nil
}

// Result is the outcome of one training run.
type Result struct {
	LearningRate float64
	W            *mat.Dense
	MSE          []float64 // per iteration, on the evaluation set
	ErrorRate    []float64 // per iteration, on the evaluation set
}

// Train runs exactly iterations steps of batch gradient descent starting from
// a zero weight matrix shaped (classes x features+1). After every step the
// new weights are scored on eval and the MSE and error rate are appended.
func Train(train, eval LabeledSet, iterations int, lr float64) (*Result, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("model: negative iteration count %d", iterations)
	}
	if len(train.Samples) == 0 || len(train.Targets) == 0 {
		return nil, fmt.Errorf("%w: empty training set", core.ErrDimensionMismatch)
	}
	width, classes := len(train.Samples[0]), len(train.Targets[0])
	if err := train.validate("train", width, classes); err != nil {
		return nil, err
	}
	if err := eval.validate("eval", width, classes); err != nil {
		return nil, err
	}

	W, err := core.Zeros(classes, width)
	if err != nil {
		return nil, err
	}
	res := &Result{
		LearningRate: lr,
		MSE:          make([]float64, 0, iterations),
		ErrorRate:    make([]float64, 0, iterations),
	}

	for range iterations {
		g, err := Predict(train.Samples, W)
		if err != nil {
			return nil, err
		}
		W, err = NextWeights(g, train.Targets, train.Samples, W, lr)
		if err != nil {
			return nil, err
		}

		soft, err := Predict(eval.Samples, W)
		if err != nil {
			return nil, err
		}
		mse, err := MSE(soft, eval.Targets)
		if err != nil {
			return nil, err
		}
		rate, err := ErrorRate(RoundAll(soft), eval.Targets)
		if err != nil {
			return nil, err
		}
		res.MSE = append(res.MSE, mse)
		res.ErrorRate = append(res.ErrorRate, rate)
	}
	res.W = W
	return res, nil
}
