package stats

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// Variance computes the population variance of a slice.
func Variance(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	_, v := stat.PopMeanVariance(x, nil)
	return v
}

// Std computes the population standard deviation of a slice.
func Std(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	_, sd := stat.PopMeanStdDev(x, nil)
	return sd
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	return floats.Min(x), floats.Max(x)
}

// Median returns the middle value of the slice, averaging the two middle
// values when the length is even (allocates a sorted copy).
func Median(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	s := sorted(x)
	return (stat.Quantile(0.5, stat.Empirical, s, nil) + s[len(s)/2]) / 2
}

// Percentile returns the p-th percentile value of the slice (0 <= p <= 100)
// using stat.LinInterp on a sorted copy. p is clamped to [0, 100].
func Percentile(x []float64, p float64) float64 {
	if len(x) == 0 {
		return 0
	}
	p = min(max(p, 0), 100)
	return stat.Quantile(p/100, stat.LinInterp, sorted(x), nil)
}

func sorted(x []float64) []float64 {
	s := slices.Clone(x)
	slices.Sort(s)
	return s
}

// Summary holds descriptive statistics of one column.
type Summary struct {
	N      int
	Mean   float64
	Std    float64
	Min    float64
	Median float64
	Max    float64
}

// Describe summarises x.
func Describe(x []float64) Summary {
	min, max := MinMax(x)
	mean, std := 0.0, 0.0
	if len(x) > 0 {
		mean, std = stat.PopMeanStdDev(x, nil)
	}
	return Summary{
		N:      len(x),
		Mean:   mean,
		Std:    std,
		Min:    min,
		Median: Median(x),
		Max:    max,
	}
}
