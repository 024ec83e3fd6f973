package dataprep

// AppendBias returns copies of the rows of X with a trailing constant 1.
func AppendBias(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		features := make([]float64, len(row)+1)
		copy(features, row)
		features[len(row)] = 1
		out[i] = features
	}
	return out
}
