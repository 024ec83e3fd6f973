package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"lindisc/pkg/NeuralNetwork"
	"lindisc/pkg/core"
	"lindisc/pkg/dataprep"
)

// MSE is the half sum of squared errors over every sample and class:
// Σ_k (1/2)·||predicted_k - truth_k||².
func MSE(predicted, truth [][]float64) (float64, error) {
	if len(predicted) != len(truth) {
		return 0, fmt.Errorf("%w: %d predictions, %d targets", core.ErrDimensionMismatch, len(predicted), len(truth))
	}
	s := 0.0
	for k := range predicted {
		if len(predicted[k]) != len(truth[k]) {
			return 0, fmt.Errorf("%w: sample %d has %d scores, %d targets",
				core.ErrDimensionMismatch, k, len(predicted[k]), len(truth[k]))
		}
		l, _ := NeuralNetwork.HalfSSE(truth[k], predicted[k])
		s += l
	}
	return s, nil
}

// ErrorRate is the fraction of samples whose hard prediction differs from the
// target in any entry. An empty set has error rate 0.
func ErrorRate(predictedHard, truth [][]float64) (float64, error) {
	if len(predictedHard) != len(truth) {
		return 0, fmt.Errorf("%w: %d predictions, %d targets", core.ErrDimensionMismatch, len(predictedHard), len(truth))
	}
	if len(truth) == 0 {
		return 0, nil
	}
	errs := 0
	for k := range truth {
		if len(predictedHard[k]) != len(truth[k]) {
			return 0, fmt.Errorf("%w: sample %d has %d predictions, %d targets",
				core.ErrDimensionMismatch, k, len(predictedHard[k]), len(truth[k]))
		}
		if !floats.Equal(predictedHard[k], truth[k]) {
			errs++
		}
	}
	return float64(errs) / float64(len(truth)), nil
}

// ConfusionMatrix counts predicted-vs-true pairings. Counts[p][t] is the
// number of samples predicted as class p whose true class is t.
type ConfusionMatrix struct {
	Classes dataprep.ClassSet
	Counts  [][]int
}

// NewConfusionMatrix tallies predicted against true labels over classes.
func NewConfusionMatrix(predicted, truth []string, classes dataprep.ClassSet) (*ConfusionMatrix, error) {
	if len(predicted) != len(truth) {
		return nil, fmt.Errorf("%w: %d predicted labels, %d true labels", core.ErrDimensionMismatch, len(predicted), len(truth))
	}
	n := classes.Len()
	counts := make([][]int, n)
	for i := range counts {
		counts[i] = make([]int, n)
	}
	for i := range predicted {
		p, ok := classes.Index(predicted[i])
		if !ok {
			return nil, fmt.Errorf("predicted label %d: %w: %q", i, dataprep.ErrUnknownClass, predicted[i])
		}
		t, ok := classes.Index(truth[i])
		if !ok {
			return nil, fmt.Errorf("true label %d: %w: %q", i, dataprep.ErrUnknownClass, truth[i])
		}
		counts[p][t]++
	}
	return &ConfusionMatrix{Classes: classes, Counts: counts}, nil
}

func (m *ConfusionMatrix) At(p, t int) int { return m.Counts[p][t] }

func (m *ConfusionMatrix) Total() int {
	s := 0
	for p := range m.Counts {
		s += m.RowSum(p)
	}
	return s
}

// RowSum is the number of samples predicted as class p.
func (m *ConfusionMatrix) RowSum(p int) int {
	s := 0
	for _, v := range m.Counts[p] {
		s += v
	}
	return s
}

// ColSum is the number of samples whose true class is t.
func (m *ConfusionMatrix) ColSum(t int) int {
	s := 0
	for p := range m.Counts {
		s += m.Counts[p][t]
	}
	return s
}

func (m *ConfusionMatrix) Accuracy() float64 {
	total := m.Total()
	if total == 0 {
		return 0
	}
	diag := 0
	for i := range m.Counts {
		diag += m.Counts[i][i]
	}
	return float64(diag) / float64(total)
}

// Precision of class c; 0 when nothing was predicted as c.
func (m *ConfusionMatrix) Precision(c int) float64 {
	if s := m.RowSum(c); s > 0 {
		return float64(m.Counts[c][c]) / float64(s)
	}
	return 0
}

// Recall of class c; 0 when no sample truly belongs to c.
func (m *ConfusionMatrix) Recall(c int) float64 {
	if s := m.ColSum(c); s > 0 {
		return float64(m.Counts[c][c]) / float64(s)
	}
	return 0
}
