package model

import (
	"gonum.org/v1/gonum/mat"

	"lindisc/pkg/NeuralNetwork"
	"lindisc/pkg/core"
)

// Predict computes g = sigmoid(W·x) for every sample x. Samples must already
// carry the trailing bias feature, so each has as many values as W has columns.
// The returned vectors are soft scores, one per class.
func Predict(samples [][]float64, W mat.Matrix) ([][]float64, error) {
	r, c := W.Dims()
	if err := core.CheckWidth(samples, c); err != nil {
		return nil, err
	}

	out := make([][]float64, len(samples))
	z := mat.NewVecDense(r, nil)
	for k, x := range samples {
		z.MulVec(W, mat.NewVecDense(c, x))
		g := make([]float64, r)
		for i := range g {
			g[i] = NeuralNetwork.Sigmoid(z.AtVec(i))
		}
		out[k] = g
	}
	return out, nil
}

// RoundToOneHot returns a one-hot vector with its 1 at the first maximal entry of soft.
func RoundToOneHot(soft []float64) []float64 {
	hard := make([]float64, len(soft))
	if i := core.ArgMax(soft); i >= 0 {
		hard[i] = 1
	}
	return hard
}

// RoundAll applies RoundToOneHot to every vector.
func RoundAll(soft [][]float64) [][]float64 {
	out := make([][]float64, len(soft))
	for i, v := range soft {
		out[i] = RoundToOneHot(v)
	}
	return out
}
