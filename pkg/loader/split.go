package loader

import (
	"errors"
	"fmt"

	"lindisc/pkg/core"
	"lindisc/pkg/data"
	"lindisc/pkg/dataprep"
)

// ErrInvalidSplitIndex is returned when a split index falls outside [0, smallest class size].
var ErrInvalidSplitIndex = errors.New("invalid split index")

// SplitPerClass groups samples by class, keeping their original order within
// each class, and puts the first splitIndex samples of every class into first
// and the remainder into last. Both sets list classes in sorted order.
func SplitPerClass(ds data.Dataset, splitIndex int) (first, last data.Dataset, err error) {
	if len(ds.Samples) != len(ds.Labels) {
		return first, last, fmt.Errorf("%w: %d samples but %d labels", core.ErrDimensionMismatch, len(ds.Samples), len(ds.Labels))
	}

	classes := dataprep.NewClassSet(ds.Labels)
	byClass := make([][]int, classes.Len())
	for i, l := range ds.Labels {
		c, _ := classes.Index(l)
		byClass[c] = append(byClass[c], i)
	}

	if splitIndex < 0 {
		return first, last, fmt.Errorf("%w: %d is negative", ErrInvalidSplitIndex, splitIndex)
	}
	for c, indices := range byClass {
		if splitIndex > len(indices) {
			return first, last, fmt.Errorf("%w: %d exceeds the %d samples of class %q",
				ErrInvalidSplitIndex, splitIndex, len(indices), classes.Name(c))
		}
	}

	var firstIdx, lastIdx []int
	for _, indices := range byClass {
		firstIdx = append(firstIdx, indices[:splitIndex]...)
		lastIdx = append(lastIdx, indices[splitIndex:]...)
	}
	return ds.Take(firstIdx), ds.Take(lastIdx), nil
}
