package scan

import (
	"math"

	"gapscan/domain/core"
)

// SegmentKind tags a segment as an attractor cluster or a void gap
type SegmentKind string

const (
	KindCluster SegmentKind = "cluster"
	KindVoid    SegmentKind = "void"
)

// Params are the caller-supplied tuning values for one analysis run
// INVARIANTS:
// - Factor is finite and > 0
// - MinClusterSize >= 1
type Params struct {
	Factor         float64 `json:"factor"`
	MinClusterSize int     `json:"min_cluster_size"`
}

// NewParams creates validated analysis parameters
func NewParams(factor float64, minClusterSize int) (Params, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return Params{}, core.NewInvalidParameterError("factor", factor)
	}
	if minClusterSize < 1 {
		return Params{}, core.NewInvalidParameterError("min_cluster_size", minClusterSize)
	}
	return Params{Factor: factor, MinClusterSize: minClusterSize}, nil
}

// MustNewParams creates parameters (panics on invalid input)
// Use only in tests - production code should handle validation errors
func MustNewParams(factor float64, minClusterSize int) Params {
	p, err := NewParams(factor, minClusterSize)
	if err != nil {
		panic(err)
	}
	return p
}

// Baseline holds the dataset-wide statistics every threshold derives from.
// It is computed once per run and passed by value; nothing mutates it.
type Baseline struct {
	MeanGap     float64 `json:"mean_gap"`     // Arithmetic mean of consecutive gaps
	MeanDensity float64 `json:"mean_density"` // n / max(span, 1), 0 for n <= 1
}

// TightBound is the largest gap that keeps two elements in the same
// cluster candidate.
func (b Baseline) TightBound(factor float64) float64 {
	return b.MeanGap / factor
}

// WideBound is the gap width a void candidate must strictly exceed.
func (b Baseline) WideBound(factor float64) float64 {
	return factor * b.MeanGap
}

// Segment is a scored region of the number line. The JSON shape is the
// output contract: exactly these seven fields, kind is implied by
// num_elements (0 means void).
type Segment struct {
	Kind        SegmentKind `json:"-"`
	Elements    []int64     `json:"elements"`
	Start       int64       `json:"start"`
	End         int64       `json:"end"`
	SpanLength  int64       `json:"span_length"`
	NumElements int         `json:"num_elements"`
	Centroid    float64     `json:"centroid"`
	ZScore      float64     `json:"z_score"`
}

// NewClusterSegment builds a cluster candidate from its member elements,
// which must be sorted ascending and non-empty.
func NewClusterSegment(elements []int64) Segment {
	start := elements[0]
	end := elements[len(elements)-1]
	return Segment{
		Kind:        KindCluster,
		Elements:    elements,
		Start:       start,
		End:         end,
		SpanLength:  end - start,
		NumElements: len(elements),
		Centroid:    midpoint(start, end),
	}
}

// NewVoidSegment builds a void candidate covering the empty interval
// between two run boundaries.
func NewVoidSegment(start, end int64) Segment {
	return Segment{
		Kind:       KindVoid,
		Elements:   []int64{},
		Start:      start,
		End:        end,
		SpanLength: end - start,
		Centroid:   midpoint(start, end),
	}
}

// Density is the segment's element density, with a guard divisor so
// zero-span clusters (duplicates) stay finite.
func (s Segment) Density() float64 {
	span := s.SpanLength
	if span < 1 {
		span = 1
	}
	return float64(s.NumElements) / float64(span)
}

func midpoint(start, end int64) float64 {
	return (float64(start) + float64(end)) / 2.0
}

// Profile summarizes the raw dataset's distribution (reporting only,
// not consumed by the segmentation pipeline).
type Profile struct {
	Size   int     `json:"size"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// AnnotatedSegment decorates a contract segment with report-only fields.
// Embedding keeps the wire shape flat.
type AnnotatedSegment struct {
	Segment
	PValue float64 `json:"p_value"`
}

// Report is the envelope emitted by the service layer and HTTP API. The
// bare segment array remains the CLI default output.
type Report struct {
	RunID       core.RunID         `json:"run_id"`
	CreatedAt   core.Timestamp     `json:"created_at"`
	Params      Params             `json:"params"`
	DatasetSize int                `json:"dataset_size"`
	Baseline    Baseline           `json:"baseline"`
	Profile     *Profile           `json:"profile,omitempty"`
	Segments    []AnnotatedSegment `json:"segments"`
}
