package testkit

import (
	"math/rand"
)

// GeneratorConfig configures the synthetic dataset generator
type GeneratorConfig struct {
	ClusterCount     int   `json:"cluster_count"`
	PointsPerCluster int   `json:"points_per_cluster"`
	ClusterWidth     int64 `json:"cluster_width"` // span each cluster occupies
	VoidWidth        int64 `json:"void_width"`    // empty stretch between clusters
	NoiseCount       int   `json:"noise_count"`   // background points over the full range
	Origin           int64 `json:"origin"`
	Seed             int64 `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults for dataset generation
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ClusterCount:     4,
		PointsPerCluster: 25,
		ClusterWidth:     10,
		VoidWidth:        200,
		NoiseCount:       20,
		Origin:           0,
		Seed:             42,
	}
}

// DatasetGenerator produces integer datasets with known attractor and
// void structure, for experiments and tests. Same seed, same dataset.
type DatasetGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewDatasetGenerator creates a new dataset generator
func NewDatasetGenerator(config GeneratorConfig) *DatasetGenerator {
	return &DatasetGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate emits the dataset in generation order (unsorted; the analysis
// pipeline sorts internally and is order-invariant).
func (g *DatasetGenerator) Generate() []int64 {
	cfg := g.config
	values := make([]int64, 0, cfg.ClusterCount*cfg.PointsPerCluster+cfg.NoiseCount)

	stride := cfg.ClusterWidth + cfg.VoidWidth
	for c := 0; c < cfg.ClusterCount; c++ {
		base := cfg.Origin + int64(c)*stride
		for p := 0; p < cfg.PointsPerCluster; p++ {
			values = append(values, base+g.rng.Int63n(cfg.ClusterWidth+1))
		}
	}

	if cfg.NoiseCount > 0 && cfg.ClusterCount > 0 {
		span := int64(cfg.ClusterCount)*stride - cfg.VoidWidth
		if span < 1 {
			span = 1
		}
		for i := 0; i < cfg.NoiseCount; i++ {
			values = append(values, cfg.Origin+g.rng.Int63n(span))
		}
	}

	return values
}
