package analysis

import (
	"gapscan/domain/core"
	"gapscan/domain/scan"
)

// Result is the output of one full pipeline run.
type Result struct {
	Segments    []scan.Segment `json:"segments"`
	Baseline    scan.Baseline  `json:"baseline"`
	DatasetSize int            `json:"dataset_size"`
}

// Run executes the whole segmentation pipeline over one dataset: sort,
// derive gaps, estimate the baseline, segment, filter, score, assemble.
// It is a pure function; the input slice is never mutated and repeated
// calls with the same arguments produce identical results.
//
// Parameters are re-validated here so no caller can push an invalid
// factor past the boundary adapters.
func Run(values []int64, params scan.Params) (*Result, error) {
	p, err := scan.NewParams(params.Factor, params.MinClusterSize)
	if err != nil {
		return nil, err
	}

	sorted := SortedCopy(values)
	gaps := Gaps(sorted)
	baseline := EstimateBaseline(sorted, gaps)

	candidates := SegmentRuns(sorted, gaps, baseline, p.Factor)
	accepted := FilterAccepted(candidates, p.MinClusterSize)
	ScoreSegments(accepted)

	if err := checkOrdered(accepted); err != nil {
		return nil, err
	}

	return &Result{
		Segments:    accepted,
		Baseline:    baseline,
		DatasetSize: len(values),
	}, nil
}

// checkOrdered asserts the start-ascending, non-overlapping invariant the
// upstream scan guarantees by construction. A violation is a bug, not a
// data problem, so it surfaces as an error instead of a silent resort.
func checkOrdered(segments []scan.Segment) error {
	for i := 1; i < len(segments); i++ {
		if segments[i].Start < segments[i-1].Start {
			return core.ErrUnsortedSegments
		}
	}
	return nil
}
