package app

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"gapscan/domain/core"
	"gapscan/domain/scan"
	"gapscan/internal/analysis"
	"gapscan/internal/loader"
	"gapscan/internal/logging"
	"gapscan/internal/profiling"
)

// AnalysisService runs the segmentation pipeline and assembles reports.
// The service itself is stateless; every analysis is an independent pure
// computation over one dataset.
type AnalysisService struct {
	maxConcurrent int64 // batch-mode bound on concurrent file analyses
	logger        *logging.Logger
}

// NewAnalysisService creates an analysis service
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{
		maxConcurrent: 4,
		logger:        logging.DefaultLogger,
	}
}

// AnalyzeRequest defines the inputs for one analysis run
type AnalyzeRequest struct {
	Values      []int64
	Params      scan.Params
	WithProfile bool
}

// Segments runs the pipeline and returns the bare contract segment list,
// the default CLI output shape.
func (s *AnalysisService) Segments(values []int64, params scan.Params) ([]scan.Segment, error) {
	result, err := analysis.Run(values, params)
	if err != nil {
		return nil, err
	}
	return result.Segments, nil
}

// Analyze runs the pipeline and wraps the segments in a report envelope
// with run metadata, the baseline, per-segment p-value annotations and an
// optional dataset profile.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*scan.Report, error) {
	result, err := analysis.Run(req.Values, req.Params)
	if err != nil {
		return nil, err
	}

	annotated := make([]scan.AnnotatedSegment, len(result.Segments))
	for i, seg := range result.Segments {
		annotated[i] = scan.AnnotatedSegment{
			Segment: seg,
			PValue:  analysis.NormalPValue(seg.ZScore),
		}
	}

	report := &scan.Report{
		RunID:       core.NewRunID(),
		CreatedAt:   core.Now(),
		Params:      req.Params,
		DatasetSize: result.DatasetSize,
		Baseline:    result.Baseline,
		Segments:    annotated,
	}

	if req.WithProfile {
		profile, err := profiling.Describe(req.Values)
		if err != nil {
			return nil, fmt.Errorf("profile dataset: %w", err)
		}
		report.Profile = profile
	}

	return report, nil
}

// FileResult pairs one input path with its report or failure
type FileResult struct {
	Path   string       `json:"path"`
	Report *scan.Report `json:"report,omitempty"`
	Err    error        `json:"-"`
}

// AnalyzeFiles analyzes several input files. Files are independent, so
// they run concurrently under a weighted semaphore; each analysis itself
// stays single-threaded. Results come back in input order, per-file
// failures recorded rather than aborting the batch.
func (s *AnalysisService) AnalyzeFiles(ctx context.Context, paths []string, params scan.Params, withProfile bool) ([]FileResult, error) {
	sem := semaphore.NewWeighted(s.maxConcurrent)
	results := make([]FileResult, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer sem.Release(1)

			results[i] = FileResult{Path: path}
			values, err := loader.FromFile(path)
			if err != nil {
				s.logger.Warn("skipping %s: %v", path, err)
				results[i].Err = err
				return
			}
			report, err := s.Analyze(ctx, AnalyzeRequest{Values: values, Params: params, WithProfile: withProfile})
			if err != nil {
				results[i].Err = err
				return
			}
			results[i].Report = report
		}(i, path)
	}
	wg.Wait()

	return results, nil
}
