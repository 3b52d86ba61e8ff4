package analysis

import (
	"github.com/montanaflynn/stats"

	"gapscan/domain/scan"
)

// EstimateBaseline computes the run-wide statistics all thresholds derive
// from: the arithmetic mean gap and the mean density n / max(span, 1).
// Degenerate datasets (n <= 1) yield zero baselines, which downstream
// stages treat as "every gap is tight".
func EstimateBaseline(sorted []int64, gaps []int64) scan.Baseline {
	baseline := scan.Baseline{}

	if len(gaps) > 0 {
		widths := make([]float64, len(gaps))
		for i, g := range gaps {
			widths[i] = float64(g)
		}
		mean, err := stats.Mean(widths)
		if err == nil {
			baseline.MeanGap = mean
		}
	}

	if n := len(sorted); n > 1 {
		span := sorted[n-1] - sorted[0]
		if span < 1 {
			span = 1
		}
		baseline.MeanDensity = float64(n) / float64(span)
	}

	return baseline
}
