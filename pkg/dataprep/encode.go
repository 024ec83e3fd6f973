package dataprep

import (
	"errors"
	"fmt"
	"slices"

	"lindisc/pkg/core"
)

// ErrUnknownClass is returned when a label is not part of the ClassSet.
var ErrUnknownClass = errors.New("unknown class")

// ClassSet is an ordered list of distinct class names. Index i encodes classes[i].
type ClassSet struct {
	names []string
	index map[string]int
}

// NewClassSet builds the sorted, deduplicated set of classes found in labels.
func NewClassSet(labels []string) ClassSet {
	names := slices.Clone(labels)
	slices.Sort(names)
	names = slices.Compact(names)
	return newClassSet(names)
}

// ClassSetOf builds a ClassSet that keeps the given order. Duplicates are rejected.
func ClassSetOf(names ...string) (ClassSet, error) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return ClassSet{}, fmt.Errorf("dataprep: duplicate class %q", n)
		}
		seen[n] = struct{}{}
	}
	return newClassSet(slices.Clone(names)), nil
}

func newClassSet(names []string) ClassSet {
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}
	return ClassSet{names: names, index: index}
}

// Len returns the number of classes.
func (c ClassSet) Len() int { return len(c.names) }

// Names returns a copy of the class names in index order.
func (c ClassSet) Names() []string { return slices.Clone(c.names) }

// Name returns the class at index i.
func (c ClassSet) Name(i int) string { return c.names[i] }

// Index returns the position of label, if present.
func (c ClassSet) Index(label string) (int, bool) {
	i, ok := c.index[label]
	return i, ok
}

// Encode one-hot encodes label.
func (c ClassSet) Encode(label string) ([]float64, error) {
	i, ok := c.index[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, label)
	}
	vec := make([]float64, len(c.names))
	vec[i] = 1
	return vec, nil
}

// Decode returns the class at the first maximal entry of vec.
// It returns "" when vec is empty or longer than the set.
func (c ClassSet) Decode(vec []float64) string {
	i := core.ArgMax(vec)
	if i < 0 || i >= len(c.names) {
		return ""
	}
	return c.names[i]
}

// EncodeAll one-hot encodes every label. It fails on the first unknown label.
func (c ClassSet) EncodeAll(labels []string) ([][]float64, error) {
	out := make([][]float64, len(labels))
	for i, l := range labels {
		vec, err := c.Encode(l)
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", i, err)
		}
		out[i] = vec
	}
	return out, nil
}

// DecodeAll decodes each vector with Decode.
func (c ClassSet) DecodeAll(vecs [][]float64) []string {
	out := make([]string, len(vecs))
	for i, v := range vecs {
		out[i] = c.Decode(v)
	}
	return out
}
