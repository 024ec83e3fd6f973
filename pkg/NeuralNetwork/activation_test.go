package NeuralNetwork

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestSigmoid(t *testing.T) {
	if got := Sigmoid(0); got != 0.5 {
		t.Fatalf("Sigmoid(0) = %v, want 0.5", got)
	}
	for _, x := range []float64{-30, -2.5, -0.1, 0.1, 2.5, 30} {
		want := 1 / (1 + math.Exp(-x))
		if got := Sigmoid(x); !scalar.EqualWithinAbsOrRel(got, want, 1e-15, 1e-15) {
			t.Errorf("Sigmoid(%v) = %v, want %v", x, got, want)
		}
		if s := Sigmoid(x) + Sigmoid(-x); !scalar.EqualWithinAbs(s, 1, 1e-15) {
			t.Errorf("Sigmoid(%v)+Sigmoid(%v) = %v, want 1", x, -x, s)
		}
	}
}

func TestSigmoidExtremeInputs(t *testing.T) {
	for _, x := range []float64{-1000, -800, 800, 1000, math.MaxFloat64, -math.MaxFloat64} {
		g := Sigmoid(x)
		if math.IsNaN(g) || math.IsInf(g, 0) || g < 0 || g > 1 {
			t.Errorf("Sigmoid(%v) = %v, want a value in [0,1]", x, g)
		}
	}
}

func TestSigmoidPrime(t *testing.T) {
	if got := SigmoidPrime(0); got != 0.25 {
		t.Fatalf("SigmoidPrime(0) = %v, want 0.25", got)
	}
	x, h := 0.7, 1e-6
	numeric := (Sigmoid(x+h) - Sigmoid(x-h)) / (2 * h)
	if !scalar.EqualWithinAbs(SigmoidPrime(x), numeric, 1e-9) {
		t.Fatalf("SigmoidPrime(%v) = %v, numeric %v", x, SigmoidPrime(x), numeric)
	}
}

func TestHalfSSE(t *testing.T) {
	loss, grad := HalfSSE([]float64{1, 0, 0}, []float64{0.5, 0.25, 0})
	if !scalar.EqualWithinAbs(loss, (0.25+0.0625)/2, 1e-15) {
		t.Fatalf("loss = %v", loss)
	}
	if !floats.Equal(grad, []float64{-0.5, 0.25, 0}) {
		t.Fatalf("grad = %v", grad)
	}
	if loss, _ := HalfSSE([]float64{0, 1}, []float64{0, 1}); loss != 0 {
		t.Fatalf("loss of perfect prediction = %v, want 0", loss)
	}
}
