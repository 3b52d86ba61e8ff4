package profiling

import (
	"github.com/montanaflynn/stats"

	"gapscan/domain/scan"
)

// Describe computes a descriptive profile of the raw dataset for report
// output. The segmentation pipeline never consumes it. Empty datasets
// yield a nil profile rather than an error.
func Describe(values []int64) (*scan.Profile, error) {
	if len(values) == 0 {
		return nil, nil
	}

	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	stdDev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, err
	}
	q25, err := stats.Percentile(data, 25)
	if err != nil {
		// Percentile needs at least two samples for interior cuts
		q25 = median
	}
	q75, err := stats.Percentile(data, 75)
	if err != nil {
		q75 = median
	}

	return &scan.Profile{
		Size:   len(values),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Q25:    q25,
		Q75:    q75,
	}, nil
}
