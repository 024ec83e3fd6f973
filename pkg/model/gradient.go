package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"lindisc/pkg/NeuralNetwork"
	"lindisc/pkg/core"
	"lindisc/pkg/optim"
)

// NextWeights performs one batch gradient-descent step on the half-MSE objective.
//
// For each sample k the error signal is δ_k = (g_k - t_k) ⊙ g_k ⊙ (1 - g_k),
// the gradient is Σ_k δ_k x_kᵀ and the result is W - lr·gradient. W is not modified.
func NextWeights(predicted, truth, samples [][]float64, W *mat.Dense, lr float64) (*mat.Dense, error) {
	n := len(samples)
	if len(predicted) != n || len(truth) != n {
		return nil, fmt.Errorf("%w: %d predictions, %d targets, %d samples",
			core.ErrDimensionMismatch, len(predicted), len(truth), n)
	}
	r, c := W.Dims()
	if err := core.CheckWidth(samples, c); err != nil {
		return nil, err
	}
	if err := core.CheckWidth(predicted, r); err != nil {
		return nil, fmt.Errorf("predictions: %w", err)
	}
	if err := core.CheckWidth(truth, r); err != nil {
		return nil, fmt.Errorf("targets: %w", err)
	}

	grad := mat.NewDense(r, c, nil)
	delta := make([]float64, r)
	for k, x := range samples {
		_, dMSE := NeuralNetwork.HalfSSE(truth[k], predicted[k])
		for i, g := range predicted[k] {
			delta[i] = dMSE[i] * NeuralNetwork.SigmoidPrimeFromOutput(g)
		}
		grad.RankOne(grad, 1, mat.NewVecDense(r, delta), mat.NewVecDense(c, x))
	}
	return optim.NewSGD(lr).Step(W, grad), nil
}
