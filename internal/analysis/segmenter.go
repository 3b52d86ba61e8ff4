package analysis

import (
	"slices"

	"gapscan/domain/scan"
)

// SegmentRuns partitions the sorted sequence into alternating maximal runs
// of tight adjacency (cluster candidates) and the wide empty intervals
// between them (void candidates), in one left-to-right scan.
//
// A gap <= MeanGap/factor keeps two elements in the same run. A gap that
// breaks a run additionally emits a void candidate when it strictly
// exceeds factor*MeanGap. Both bounds can collapse (small factor, or a
// zero baseline from near-degenerate data), in which case the whole
// dataset becomes one cluster candidate with zero voids.
func SegmentRuns(sorted []int64, gaps []int64, baseline scan.Baseline, factor float64) []scan.Segment {
	if len(sorted) == 0 {
		return nil
	}

	tight := baseline.TightBound(factor)
	wide := baseline.WideBound(factor)

	var candidates []scan.Segment
	runStart := 0

	for i := 1; i < len(sorted); i++ {
		gap := float64(gaps[i-1])
		if gap <= tight {
			continue
		}

		candidates = append(candidates, scan.NewClusterSegment(slices.Clone(sorted[runStart:i])))
		if gap > wide {
			candidates = append(candidates, scan.NewVoidSegment(sorted[i-1], sorted[i]))
		}
		runStart = i
	}

	candidates = append(candidates, scan.NewClusterSegment(slices.Clone(sorted[runStart:])))
	return candidates
}

// FilterAccepted keeps cluster candidates meeting the minimum size and
// void candidates with positive width. Rejected candidates are dropped
// outright; their elements are not merged into neighbors. Order is
// preserved. The result is never nil so an all-rejected dataset still
// serializes as an empty array.
func FilterAccepted(candidates []scan.Segment, minClusterSize int) []scan.Segment {
	accepted := make([]scan.Segment, 0, len(candidates))
	for _, c := range candidates {
		switch c.Kind {
		case scan.KindCluster:
			if c.NumElements >= minClusterSize {
				accepted = append(accepted, c)
			}
		case scan.KindVoid:
			if c.SpanLength > 0 {
				accepted = append(accepted, c)
			}
		}
	}
	return accepted
}
