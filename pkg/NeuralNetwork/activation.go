package NeuralNetwork

import "math"

// Sigmoid is the logistic function 1/(1+e^-x), evaluated so that exp never
// sees a large positive argument.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

// SigmoidPrime is the derivative of Sigmoid at x.
func SigmoidPrime(x float64) float64 { return SigmoidPrimeFromOutput(Sigmoid(x)) }

// SigmoidPrimeFromOutput is the derivative of Sigmoid written in terms of its output g.
func SigmoidPrimeFromOutput(g float64) float64 { return g * (1 - g) }
