package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"gapscan/domain/scan"
)

// ScoreSegments assigns each accepted segment a z-score over the pooled
// density of all accepted segments, clusters and voids together. Pooling
// is what makes dense clusters score positive and empty voids score
// negative relative to the shared mean.
//
// With fewer than two segments, or when every segment shares the same
// density, the population standard deviation is zero and every z-score
// stays 0.
func ScoreSegments(segments []scan.Segment) {
	if len(segments) == 0 {
		return
	}

	densities := make([]float64, len(segments))
	for i, s := range segments {
		densities[i] = s.Density()
	}

	mean, err := stats.Mean(densities)
	if err != nil {
		return
	}
	sigma, err := stats.StandardDeviationPopulation(densities)
	if err != nil || sigma <= 0 {
		return
	}

	for i := range segments {
		segments[i].ZScore = (densities[i] - mean) / sigma
	}
}

// NormalPValue is the two-sided tail probability of a z-score under the
// standard normal distribution. Report annotation only; not part of the
// segment output contract.
func NormalPValue(z float64) float64 {
	return 2.0 * (1.0 - distuv.UnitNormal.CDF(math.Abs(z)))
}
