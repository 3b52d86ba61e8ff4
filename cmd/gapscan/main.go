package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gapscan/adapters/api"
	"gapscan/app"
	"gapscan/domain/scan"
	"gapscan/internal/config"
	"gapscan/internal/loader"
	"gapscan/internal/testkit"
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "gapscan",
		Short: "Locate attractor clusters and void gaps in integer datasets",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(cfg),
		newServeCmd(cfg),
		newDatasetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd(cfg config.Config) *cobra.Command {
	var factor float64
	var minClusterSize int
	var report bool
	var profile bool
	var pretty bool

	cmd := &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Analyze a dataset for clusters and voids",
		Long: `Analyze one or more integer datasets, emitting the accepted segments as JSON.

Reads newline-separated integers from the given file, or from stdin when no
file (or "-") is given. CSV and XLSX inputs are read from their first column.
With several files, analyses run concurrently and results are keyed by path.

Example: gapscan analyze values.txt --factor 1.5 --min-cluster-size 6`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := scan.NewParams(factor, minClusterSize)
			if err != nil {
				return err
			}
			return runAnalyze(cmd, args, params, report, profile, pretty)
		},
	}

	cmd.Flags().Float64Var(&factor, "factor", cfg.Analysis.Factor, "Threshold multiplier for cluster tightness and void width")
	cmd.Flags().IntVar(&minClusterSize, "min-cluster-size", cfg.Analysis.MinClusterSize, "Minimum elements for an accepted cluster")
	cmd.Flags().BoolVar(&report, "report", false, "Emit the full report envelope instead of the bare segment array")
	cmd.Flags().BoolVar(&profile, "profile", cfg.Analysis.WithProfile, "Include a dataset profile in the report envelope")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")

	return cmd
}

// fileOutput is the per-file entry of a batch analysis
type fileOutput struct {
	Path   string       `json:"path"`
	Report *scan.Report `json:"report,omitempty"`
	Error  string       `json:"error,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string, params scan.Params, report, profile, pretty bool) error {
	service := app.NewAnalysisService()

	// Batch mode: several files, envelope output keyed by path.
	if len(args) > 1 {
		results, err := service.AnalyzeFiles(cmd.Context(), args, params, profile)
		if err != nil {
			return err
		}
		outputs := make([]fileOutput, len(results))
		failed := false
		for i, r := range results {
			outputs[i] = fileOutput{Path: r.Path, Report: r.Report}
			if r.Err != nil {
				outputs[i].Error = r.Err.Error()
				failed = true
			}
		}
		if err := emitJSON(cmd, outputs, pretty); err != nil {
			return err
		}
		if failed {
			return fmt.Errorf("one or more inputs failed")
		}
		return nil
	}

	values, err := loadSingle(args)
	if err != nil {
		return err
	}

	if report {
		rep, err := service.Analyze(cmd.Context(), app.AnalyzeRequest{
			Values:      values,
			Params:      params,
			WithProfile: profile,
		})
		if err != nil {
			return err
		}
		return emitJSON(cmd, rep, pretty)
	}

	segments, err := service.Segments(values, params)
	if err != nil {
		return err
	}
	return emitJSON(cmd, segments, pretty)
}

func loadSingle(args []string) ([]int64, error) {
	if len(args) == 0 || args[0] == "-" {
		return loader.FromReader(os.Stdin, "stdin")
	}
	return loader.FromFile(args[0])
}

func emitJSON(cmd *cobra.Command, v interface{}, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func newServeCmd(cfg config.Config) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Long: `Expose the segmentation engine as an HTTP API.

POST /analyze accepts {"values": [...], "factor": 1.5, "min_cluster_size": 6}
and returns the report envelope. GET /healthz reports liveness.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := api.NewServer(listen, app.NewAnalysisService())
			return server.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&listen, "listen", cfg.Server.Listen, "Listen address")

	return cmd
}

func newDatasetCmd() *cobra.Command {
	gen := testkit.DefaultGeneratorConfig()
	var out string

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Generate a synthetic dataset with known cluster/void structure",
		Long: `Generate a newline-separated integer dataset for experiments: a row of
equally spaced clusters separated by wide voids, plus uniform background noise.
The same seed always yields the same dataset.

Example: gapscan dataset --clusters 4 --points 25 --seed 7 --out values.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := testkit.NewDatasetGenerator(gen).Generate()

			var sb strings.Builder
			for _, v := range values {
				fmt.Fprintf(&sb, "%d\n", v)
			}

			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), sb.String())
				return nil
			}
			if err := os.WriteFile(out, []byte(sb.String()), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&gen.ClusterCount, "clusters", gen.ClusterCount, "Number of clusters")
	cmd.Flags().IntVar(&gen.PointsPerCluster, "points", gen.PointsPerCluster, "Points per cluster")
	cmd.Flags().Int64Var(&gen.ClusterWidth, "cluster-width", gen.ClusterWidth, "Span each cluster occupies")
	cmd.Flags().Int64Var(&gen.VoidWidth, "void-width", gen.VoidWidth, "Empty stretch between clusters")
	cmd.Flags().IntVar(&gen.NoiseCount, "noise", gen.NoiseCount, "Background noise points")
	cmd.Flags().Int64Var(&gen.Seed, "seed", gen.Seed, "Random seed")
	cmd.Flags().StringVar(&out, "out", "", "Output file (stdout when empty)")

	return cmd
}
