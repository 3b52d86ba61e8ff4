package analysis

import (
	"slices"
	"testing"

	"gapscan/domain/scan"
)

// Two tight groups of five separated by a wide gap.
var twoClusterData = []int64{0, 1, 2, 3, 4, 100, 101, 102, 103, 104}

func segmentFixture(t *testing.T, sorted []int64, factor float64) []scan.Segment {
	t.Helper()
	gaps := Gaps(sorted)
	baseline := EstimateBaseline(sorted, gaps)
	return SegmentRuns(sorted, gaps, baseline, factor)
}

func TestSegmentRuns(t *testing.T) {
	t.Run("cluster void cluster", func(t *testing.T) {
		candidates := segmentFixture(t, twoClusterData, 1.0)
		if len(candidates) != 3 {
			t.Fatalf("expected 3 candidates, got %d: %+v", len(candidates), candidates)
		}

		if candidates[0].Kind != scan.KindCluster || !slices.Equal(candidates[0].Elements, []int64{0, 1, 2, 3, 4}) {
			t.Errorf("first candidate: %+v", candidates[0])
		}
		void := candidates[1]
		if void.Kind != scan.KindVoid || void.Start != 4 || void.End != 100 || void.SpanLength != 96 {
			t.Errorf("void candidate: %+v", void)
		}
		if candidates[2].Kind != scan.KindCluster || !slices.Equal(candidates[2].Elements, []int64{100, 101, 102, 103, 104}) {
			t.Errorf("last candidate: %+v", candidates[2])
		}
	})

	t.Run("run break without void", func(t *testing.T) {
		// Gaps 1,1,30,1,1 -> mean 6.8. Factor 5: tight 1.36, wide 34.
		// The 30 gap breaks the run but stays under the wide bound.
		sorted := []int64{0, 1, 2, 32, 33, 34}
		candidates := segmentFixture(t, sorted, 5.0)
		if len(candidates) != 2 {
			t.Fatalf("expected 2 candidates, got %d: %+v", len(candidates), candidates)
		}
		for _, c := range candidates {
			if c.Kind != scan.KindCluster {
				t.Errorf("unexpected void: %+v", c)
			}
		}
	})

	t.Run("small factor collapses to one cluster", func(t *testing.T) {
		candidates := segmentFixture(t, SortedCopy([]int64{1, 2, 10, 20}), 0.5)
		if len(candidates) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(candidates))
		}
		if candidates[0].NumElements != 4 {
			t.Errorf("collapsed cluster should hold all elements: %+v", candidates[0])
		}
	})

	t.Run("all-equal dataset forms one cluster", func(t *testing.T) {
		candidates := segmentFixture(t, []int64{9, 9, 9, 9}, 1.5)
		if len(candidates) != 1 || candidates[0].NumElements != 4 {
			t.Fatalf("candidates: %+v", candidates)
		}
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		if got := segmentFixture(t, nil, 1.0); got != nil {
			t.Errorf("empty dataset: %+v", got)
		}
		got := segmentFixture(t, []int64{42}, 1.0)
		if len(got) != 1 || got[0].NumElements != 1 || got[0].SpanLength != 0 {
			t.Errorf("singleton dataset: %+v", got)
		}
	})
}

func TestFilterAccepted(t *testing.T) {
	candidates := []scan.Segment{
		scan.NewClusterSegment([]int64{1, 2, 3}),
		scan.NewVoidSegment(3, 50),
		scan.NewClusterSegment([]int64{50}),
		scan.NewVoidSegment(50, 50), // zero width, must be rejected
		scan.NewClusterSegment([]int64{90, 91}),
	}

	accepted := FilterAccepted(candidates, 2)
	if len(accepted) != 3 {
		t.Fatalf("expected 3 accepted, got %d: %+v", len(accepted), accepted)
	}
	if accepted[0].NumElements != 3 || accepted[1].Kind != scan.KindVoid || accepted[2].NumElements != 2 {
		t.Errorf("accepted: %+v", accepted)
	}

	t.Run("all rejected yields empty non-nil list", func(t *testing.T) {
		accepted := FilterAccepted([]scan.Segment{scan.NewClusterSegment([]int64{1})}, 5)
		if accepted == nil || len(accepted) != 0 {
			t.Errorf("accepted = %#v", accepted)
		}
	})
}
