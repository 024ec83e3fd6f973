package model

import (
	"lindisc/pkg/core"
	"lindisc/pkg/data"
)

// ErrDimensionMismatch is core.ErrDimensionMismatch, re-exported for callers of this package.
var ErrDimensionMismatch = core.ErrDimensionMismatch

// Classifier is a supervised multi-class model over string labels.
type Classifier interface {
	Fit(train, eval data.Dataset) (*Result, error)
	PredictLabels(X [][]float64) ([]string, error)
}

// ProbabilisticClassifier optionally exposes per-class scores.
type ProbabilisticClassifier interface {
	Classifier
	PredictProba(X [][]float64) ([][]float64, error) // one score in (0,1) per class
}

var _ ProbabilisticClassifier = (*LinearClassifier)(nil)
