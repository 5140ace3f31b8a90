package commands

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/showlens/showlens/pkg/report"
)

const defaultDashboardFile = "dashboard.html"

// PlotCommand holds configuration and dependencies for the plot command.
type PlotCommand struct {
	configPath string
	output     string
	chartKind  string
	silent     bool

	deps Dependencies
}

// NewPlotCommand creates the plot command: fetch, aggregate, and
// write the interactive HTML dashboard.
func NewPlotCommand() *cobra.Command {
	return newPlotCommandWithDeps(defaultDependencies())
}

func newPlotCommandWithDeps(deps Dependencies) *cobra.Command {
	pc := &PlotCommand{deps: deps}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the series production dashboard as HTML",
		Long:  "Fetch all records, compute the yearly series, and write an interactive HTML dashboard.",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.configPath, "config", "", "Config file path (default: .showlens.yaml in CWD or $HOME)")
	cmd.Flags().StringVarP(&pc.output, "output", "o", defaultDashboardFile, "Output HTML path (\"-\" for stdout)")
	cmd.Flags().StringVar(&pc.chartKind, "chart", "", "Chart kind: bar or line (overrides chart.kind)")
	cmd.Flags().BoolVar(&pc.silent, "silent", false, "Disable progress output")

	return cmd
}

func (pc *PlotCommand) run(cmd *cobra.Command, _ []string) error {
	progressWriter := cmd.ErrOrStderr()

	cfg, err := pc.deps.LoadConfig(pc.configPath)
	if err != nil {
		return err
	}

	if pc.chartKind != "" {
		cfg.Chart.Kind = pc.chartKind
	}

	kind, err := report.ParseChartKind(cfg.Chart.Kind)
	if err != nil {
		return err
	}

	startedAt := time.Now()

	progressf(pc.silent, progressWriter, "fetching records from %s.%s", cfg.Mongo.Database, cfg.Mongo.Collection)

	frame, fetched, err := computeFrame(cmd.Context(), cfg, pc.deps)
	if err != nil {
		return err
	}

	progressf(pc.silent, progressWriter, "aggregated %d records into %d years in %s",
		fetched, frame.Len(), time.Since(startedAt).Round(time.Millisecond))

	// Render into memory first so a failed render never leaves a
	// truncated dashboard on disk.
	var buf bytes.Buffer

	err = report.WriteDashboard(&buf, frame, kind)
	if err != nil {
		return err
	}

	if pc.output == "-" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		if err != nil {
			return fmt.Errorf("write dashboard: %w", err)
		}

		return nil
	}

	err = os.WriteFile(pc.output, buf.Bytes(), 0o644)
	if err != nil {
		return fmt.Errorf("write %s: %w", pc.output, err)
	}

	progressf(pc.silent, progressWriter, "dashboard written to %s", pc.output)

	return nil
}
