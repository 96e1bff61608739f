package sim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyTable is returned when a weighted table has no entries.
	ErrEmptyTable = errors.New("sim: weighted table is empty")
	// ErrInvalidWeight is returned for negative, NaN or all-zero weights.
	ErrInvalidWeight = errors.New("sim: invalid weight")
)

// Entry is one bucket of a WeightedTable.
type Entry[T any] struct {
	Value  T
	Weight float64
}

// WeightedTable selects values by cumulative-weight comparison.
// Weights are normalized so they always sum to 1.
type WeightedTable[T any] struct {
	entries    []Entry[T]
	cumulative []float64
}

// NewWeightedTable validates and normalizes the entries.
func NewWeightedTable[T any](entries ...Entry[T]) (*WeightedTable[T], error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	total := 0.0
	for i, e := range entries {
		if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("%w: entry %d has weight %v", ErrInvalidWeight, i, e.Weight)
		}
		total += e.Weight
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrInvalidWeight)
	}

	t := &WeightedTable[T]{
		entries:    make([]Entry[T], len(entries)),
		cumulative: make([]float64, len(entries)),
	}
	acc := 0.0
	for i, e := range entries {
		acc += e.Weight
		t.entries[i] = Entry[T]{Value: e.Value, Weight: e.Weight / total}
		t.cumulative[i] = acc / total
	}
	// Pin the last non-empty bucket to exactly 1 so rounding cannot leave a gap.
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Weight > 0 {
			t.cumulative[i] = 1
			break
		}
	}
	return t, nil
}

// Pick returns the first entry whose cumulative weight exceeds draw.
// Draws outside [0, 1) fall back to the first entry.
func (t *WeightedTable[T]) Pick(draw float64) T {
	for i, c := range t.cumulative {
		if draw < c {
			return t.entries[i].Value
		}
	}
	return t.entries[0].Value
}

// Draw picks an entry using a fresh draw from rng.
func (t *WeightedTable[T]) Draw(rng RandomSource) T {
	return t.Pick(rng.Float64())
}

// Entries returns the normalized entries in table order.
func (t *WeightedTable[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of buckets.
func (t *WeightedTable[T]) Len() int {
	return len(t.entries)
}
