package testkit

import (
	"reflect"
	"testing"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultGeneratorConfig()

	first := NewDatasetGenerator(cfg).Generate()
	second := NewDatasetGenerator(cfg).Generate()
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed must yield the same dataset")
	}

	cfg.Seed = 7
	other := NewDatasetGenerator(cfg).Generate()
	if reflect.DeepEqual(first, other) {
		t.Error("different seed should change the dataset")
	}
}

func TestGenerate_Shape(t *testing.T) {
	cfg := GeneratorConfig{
		ClusterCount:     3,
		PointsPerCluster: 10,
		ClusterWidth:     5,
		VoidWidth:        100,
		NoiseCount:       4,
		Origin:           50,
		Seed:             1,
	}
	values := NewDatasetGenerator(cfg).Generate()

	if len(values) != 34 {
		t.Fatalf("len = %d, want 34", len(values))
	}

	// Cluster points land inside their stride window, noise inside the
	// overall range.
	lo := cfg.Origin
	hi := cfg.Origin + int64(cfg.ClusterCount)*(cfg.ClusterWidth+cfg.VoidWidth) - cfg.VoidWidth
	for _, v := range values {
		if v < lo || v > hi {
			t.Errorf("value %d outside [%d, %d]", v, lo, hi)
		}
	}
}

func TestGenerate_Empty(t *testing.T) {
	values := NewDatasetGenerator(GeneratorConfig{Seed: 1}).Generate()
	if len(values) != 0 {
		t.Errorf("empty config should yield no values, got %d", len(values))
	}
}
