package scan

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewParams_Validation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := NewParams(1.5, 6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Factor != 1.5 || p.MinClusterSize != 6 {
			t.Errorf("params not carried through: %+v", p)
		}
	})

	t.Run("rejects non-positive factor", func(t *testing.T) {
		for _, factor := range []float64{0, -1.0} {
			if _, err := NewParams(factor, 2); err == nil {
				t.Errorf("expected error for factor %v", factor)
			}
		}
	})

	t.Run("rejects min cluster size below one", func(t *testing.T) {
		if _, err := NewParams(1.0, 0); err == nil {
			t.Error("expected error for min_cluster_size 0")
		}
	})

	t.Run("error names the parameter", func(t *testing.T) {
		_, err := NewParams(-2.5, 2)
		if err == nil {
			t.Fatal("expected error")
		}
		if got := err.Error(); !strings.Contains(got, "factor") || !strings.Contains(got, "-2.5") {
			t.Errorf("error should name parameter and value, got: %s", got)
		}
	})
}

func TestSegmentConstructors(t *testing.T) {
	t.Run("cluster", func(t *testing.T) {
		s := NewClusterSegment([]int64{10, 12, 20})
		if s.Kind != KindCluster {
			t.Errorf("kind = %s", s.Kind)
		}
		if s.Start != 10 || s.End != 20 || s.SpanLength != 10 || s.NumElements != 3 {
			t.Errorf("bad bounds: %+v", s)
		}
		if s.Centroid != 15.0 {
			t.Errorf("centroid should be the midpoint, got %v", s.Centroid)
		}
	})

	t.Run("single element cluster", func(t *testing.T) {
		s := NewClusterSegment([]int64{7})
		if s.SpanLength != 0 || s.Centroid != 7.0 || s.NumElements != 1 {
			t.Errorf("bad degenerate cluster: %+v", s)
		}
	})

	t.Run("void", func(t *testing.T) {
		s := NewVoidSegment(20, 120)
		if s.Kind != KindVoid {
			t.Errorf("kind = %s", s.Kind)
		}
		if s.NumElements != 0 || len(s.Elements) != 0 || s.Elements == nil {
			t.Errorf("void must carry an empty, non-nil element list: %+v", s)
		}
		if s.SpanLength != 100 || s.Centroid != 70.0 {
			t.Errorf("bad void bounds: %+v", s)
		}
	})
}

func TestSegmentDensity(t *testing.T) {
	cluster := NewClusterSegment([]int64{0, 1, 2, 3})
	if got := cluster.Density(); got != 4.0/3.0 {
		t.Errorf("density = %v, want 4/3", got)
	}

	// Zero span (all duplicates) uses the guard divisor.
	dup := NewClusterSegment([]int64{5, 5, 5})
	if got := dup.Density(); got != 3.0 {
		t.Errorf("zero-span density = %v, want 3", got)
	}

	void := NewVoidSegment(0, 50)
	if got := void.Density(); got != 0.0 {
		t.Errorf("void density = %v, want 0", got)
	}
}

// The segment wire format is a hard output contract: exactly these seven
// fields, voids included.
func TestSegmentJSONContract(t *testing.T) {
	void := NewVoidSegment(2, 10)
	void.ZScore = -1.25

	raw, err := json.Marshal(void)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"elements", "start", "end", "span_length", "num_elements", "centroid", "z_score"}
	if len(fields) != len(want) {
		t.Errorf("expected exactly %d fields, got %d: %s", len(want), len(fields), raw)
	}
	for _, name := range want {
		if _, ok := fields[name]; !ok {
			t.Errorf("missing field %q in %s", name, raw)
		}
	}
	if string(fields["elements"]) != "[]" {
		t.Errorf("void elements must serialize as [], got %s", fields["elements"])
	}
}

func TestBaselineBounds(t *testing.T) {
	b := Baseline{MeanGap: 6.0}
	if got := b.TightBound(2.0); got != 3.0 {
		t.Errorf("tight bound = %v, want 3", got)
	}
	if got := b.WideBound(2.0); got != 12.0 {
		t.Errorf("wide bound = %v, want 12", got)
	}
}
