package analysis

import "slices"

// SortedCopy returns the dataset sorted ascending. The input slice is
// never mutated; everything downstream reads the copy.
func SortedCopy(values []int64) []int64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted
}

// Gaps derives the n-1 consecutive differences of a sorted sequence.
// Gaps are non-negative because the input is sorted; duplicates yield
// zero-width gaps. n <= 1 yields an empty list.
func Gaps(sorted []int64) []int64 {
	if len(sorted) < 2 {
		return nil
	}
	gaps := make([]int64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i]-sorted[i-1])
	}
	return gaps
}
