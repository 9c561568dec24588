package stats

import (
	"cmp"
	"math"
	"slices"
)

// Result pairs the median of a dataset with the positions of the
// sample(s) it was computed from, counted in the original input order.
// It is returned by value and Indices is allocated fresh on every call,
// so callers can treat it as read-only without affecting anyone else.
type Result struct {
	Median  float64 `json:"median"`
	Indices []int   `json:"indices"`
}

// Empty reports whether the result came from an empty dataset. Prefer
// this over comparing Median against NaN.
func (r Result) Empty() bool {
	return len(r.Indices) == 0
}

// rankedSample ties a value to its position in the original dataset so
// the position survives sorting.
type rankedSample struct {
	index int
	value float64
}

// Median finds the median of values together with the index of the
// contributing sample, or the two indices for even-sized datasets
// (higher-ranked first). Ranking sorts a private copy descending by
// value; equal values keep their input order, so the result is
// deterministic. An empty dataset yields NaN and no indices rather
// than an error. Behavior for NaN or infinite samples is unspecified.
func Median(values []float64) Result {
	if len(values) == 0 {
		return Result{Median: math.NaN(), Indices: []int{}}
	}

	ranked := make([]rankedSample, len(values))
	for i, v := range values {
		ranked[i] = rankedSample{index: i, value: v}
	}
	slices.SortStableFunc(ranked, func(a, b rankedSample) int {
		return cmp.Compare(b.value, a.value)
	})

	n := len(ranked)
	if n%2 == 1 {
		mid := ranked[n/2]
		return Result{Median: mid.value, Indices: []int{mid.index}}
	}

	upper, lower := ranked[n/2-1], ranked[n/2]
	return Result{
		Median:  (upper.value + lower.value) / 2.0,
		Indices: []int{upper.index, lower.index},
	}
}
