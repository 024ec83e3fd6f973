package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sample represents a single labelled data point.
type Sample struct {
	X     []float64
	Label string
}

// Dataset holds feature vectors and their parallel class labels.
type Dataset struct {
	Samples [][]float64
	Labels  []string
}

// Len returns the number of samples.
func (d Dataset) Len() int { return len(d.Samples) }

// Append adds one sample to the dataset.
func (d *Dataset) Append(s Sample) {
	d.Samples = append(d.Samples, s.X)
	d.Labels = append(d.Labels, s.Label)
}

// Take returns the samples at the given indices, in that order.
func (d Dataset) Take(indices []int) Dataset {
	out := Dataset{
		Samples: make([][]float64, len(indices)),
		Labels:  make([]string, len(indices)),
	}
	for i, idx := range indices {
		out.Samples[i] = d.Samples[idx]
		out.Labels[i] = d.Labels[idx]
	}
	return out
}

// LoadCSV reads a comma-delimited file whose last column is the class label.
func LoadCSV(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer file.Close()
	return ReadCSV(bufio.NewReader(file))
}

// ReadCSV parses rows of "f1,f2,...,fn,label". Cells are trimmed and blank
// lines are skipped. Every row must have the same number of cells.
func ReadCSV(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.TrimLeadingSpace = true

	var ds Dataset
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("data: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if len(rec) < 2 {
			return Dataset{}, fmt.Errorf("data: line %d: need at least one feature and a label", line)
		}

		x := make([]float64, len(rec)-1)
		for i, s := range rec[:len(rec)-1] {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return Dataset{}, fmt.Errorf("data: line %d column %d: %w", line, i, err)
			}
			x[i] = v
		}
		ds.Append(Sample{X: x, Label: strings.TrimSpace(rec[len(rec)-1])})
	}
	return ds, nil
}
