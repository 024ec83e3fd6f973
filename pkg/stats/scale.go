package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler rescales every column to zero mean and unit variance using
// statistics learned by Fit. Columns with zero variance are only centred.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("stats: cannot fit scaler on empty data")
	}
	c := len(X[0])
	cols := make([][]float64, c)
	for i, row := range X {
		if len(row) != c {
			return fmt.Errorf("stats: row %d has %d values, want %d", i, len(row), c)
		}
		for j, v := range row {
			cols[j] = append(cols[j], v)
		}
	}
	s.Mean = make([]float64, c)
	s.Std = make([]float64, c)
	for j, col := range cols {
		s.Mean[j], s.Std[j] = stat.PopMeanStdDev(col, nil)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

// Transform returns a scaled copy of X. An unfitted scaler returns X unchanged.
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	if !s.fit {
		return X
	}
	Y := make([][]float64, len(X))
	for i, x := range X {
		row := make([]float64, len(x))
		for j, v := range x {
			row[j] = (v - s.Mean[j]) / s.Std[j]
		}
		Y[i] = row
	}
	return Y
}

func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X), nil
}
