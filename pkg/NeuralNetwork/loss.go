package NeuralNetwork

import "gonum.org/v1/gonum/floats"

// HalfSSE is the half sum of squared errors (1/2)·||yPred - yTrue||² and its
// gradient with respect to yPred, which is simply yPred - yTrue.
// yTrue and yPred must have the same length.
func HalfSSE(yTrue, yPred []float64) (float64, []float64) {
	grad := make([]float64, len(yPred))
	floats.SubTo(grad, yPred, yTrue)
	return floats.Dot(grad, grad) / 2, grad
}
