package optim

import "gonum.org/v1/gonum/mat"

// Gradient descent with a fixed learning rate
type SGD struct{ LearningRate float64 }

func NewSGD(lr float64) *SGD { return &SGD{LearningRate: lr} }

// Step returns weights - LearningRate*grads as a new matrix; weights is left untouched.
func (o *SGD) Step(weights, grads mat.Matrix) *mat.Dense {
	r, c := weights.Dims()
	next := mat.NewDense(r, c, nil)
	next.Scale(-o.LearningRate, grads)
	next.Add(weights, next)
	return next
}
