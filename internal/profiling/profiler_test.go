package profiling

import (
	"testing"
)

func TestDescribe(t *testing.T) {
	profile, err := Describe([]int64{1, 2, 3, 4, 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile == nil {
		t.Fatal("expected a profile")
	}

	if profile.Size != 5 {
		t.Errorf("size = %d", profile.Size)
	}
	if profile.Min != 1 || profile.Max != 100 {
		t.Errorf("min/max = %v/%v", profile.Min, profile.Max)
	}
	if profile.Mean != 22.0 {
		t.Errorf("mean = %v, want 22", profile.Mean)
	}
	if profile.Median != 3.0 {
		t.Errorf("median = %v, want 3", profile.Median)
	}
}

func TestDescribe_Empty(t *testing.T) {
	profile, err := Describe(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile != nil {
		t.Errorf("profile = %+v, want nil", profile)
	}
}

func TestDescribe_SingleValue(t *testing.T) {
	profile, err := Describe([]int64{7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Min != 7 || profile.Max != 7 || profile.StdDev != 0 {
		t.Errorf("profile = %+v", profile)
	}
}
