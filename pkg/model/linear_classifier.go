package model

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"lindisc/pkg/data"
	"lindisc/pkg/dataprep"
)

// ErrNotFitted is returned when predicting with a classifier that has no weights.
var ErrNotFitted = errors.New("model: classifier is not fitted")

// LinearClassifier is a multi-class linear discriminant g = sigmoid(W·[x 1])
// trained by batch gradient descent on the half-MSE objective.
type LinearClassifier struct {
	Classes      dataprep.ClassSet
	LearningRate float64
	Iterations   int

	W *mat.Dense // (classes x features+1), nil until Fit
}

// Option functional config for LinearClassifier
type Option func(*LinearClassifier)

func WithLearningRate(lr float64) Option { return func(m *LinearClassifier) { m.LearningRate = lr } }
func WithIterations(n int) Option        { return func(m *LinearClassifier) { m.Iterations = n } }

// NewLinearClassifier creates an untrained classifier over classes.
// Defaults: learning rate 0.01, 1000 iterations.
func NewLinearClassifier(classes dataprep.ClassSet, opts ...Option) *LinearClassifier {
	m := &LinearClassifier{
		Classes:      classes,
		LearningRate: 0.01,
		Iterations:   1000,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Labeled appends the bias feature to ds and one-hot encodes its labels.
func (m *LinearClassifier) Labeled(ds data.Dataset) (LabeledSet, error) {
	targets, err := m.Classes.EncodeAll(ds.Labels)
	if err != nil {
		return LabeledSet{}, err
	}
	return LabeledSet{Samples: dataprep.AppendBias(ds.Samples), Targets: targets}, nil
}

// Fit trains on train and records per-iteration metrics on eval.
// Samples are raw features; the bias feature is added here.
func (m *LinearClassifier) Fit(train, eval data.Dataset) (*Result, error) {
	tr, err := m.Labeled(train)
	if err != nil {
		return nil, err
	}
	ev, err := m.Labeled(eval)
	if err != nil {
		return nil, err
	}
	res, err := Train(tr, ev, m.Iterations, m.LearningRate)
	if err != nil {
		return nil, err
	}
	m.W = res.W
	return res, nil
}

// PredictProba returns the soft per-class scores for raw feature rows.
func (m *LinearClassifier) PredictProba(X [][]float64) ([][]float64, error) {
	if m.W == nil {
		return nil, ErrNotFitted
	}
	return Predict(dataprep.AppendBias(X), m.W)
}

// PredictLabels returns the class with the highest score for each row.
func (m *LinearClassifier) PredictLabels(X [][]float64) ([]string, error) {
	soft, err := m.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return m.Classes.DecodeAll(RoundAll(soft)), nil
}

// Evaluation summarises a fitted classifier on a labelled dataset.
type Evaluation struct {
	MSE       float64
	ErrorRate float64
	Predicted []string
	Confusion *ConfusionMatrix
}

// Evaluate scores the classifier on ds.
func (m *LinearClassifier) Evaluate(ds data.Dataset) (*Evaluation, error) {
	if m.W == nil {
		return nil, ErrNotFitted
	}
	set, err := m.Labeled(ds)
	if err != nil {
		return nil, err
	}
	soft, err := Predict(set.Samples, m.W)
	if err != nil {
		return nil, err
	}
	hard := RoundAll(soft)

	ev := &Evaluation{Predicted: m.Classes.DecodeAll(hard)}
	if ev.MSE, err = MSE(soft, set.Targets); err != nil {
		return nil, err
	}
	if ev.ErrorRate, err = ErrorRate(hard, set.Targets); err != nil {
		return nil, err
	}
	if ev.Confusion, err = NewConfusionMatrix(ev.Predicted, ds.Labels, m.Classes); err != nil {
		return nil, err
	}
	return ev, nil
}
