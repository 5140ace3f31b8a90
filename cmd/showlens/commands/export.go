package commands

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/showlens/showlens/pkg/report"
)

const defaultExportFile = "export.csv"

// ExportCommand holds configuration and dependencies for the export command.
type ExportCommand struct {
	configPath string
	output     string
	silent     bool

	deps Dependencies
}

// NewExportCommand creates the export command: fetch, aggregate, and
// write the aligned series as CSV.
func NewExportCommand() *cobra.Command {
	return newExportCommandWithDeps(defaultDependencies())
}

func newExportCommandWithDeps(deps Dependencies) *cobra.Command {
	ec := &ExportCommand{deps: deps}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the computed yearly series as CSV",
		Args:  cobra.NoArgs,
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.configPath, "config", "", "Config file path (default: .showlens.yaml in CWD or $HOME)")
	cmd.Flags().StringVarP(&ec.output, "output", "o", defaultExportFile, "Output CSV path (\"-\" for stdout)")
	cmd.Flags().BoolVar(&ec.silent, "silent", false, "Disable progress output")

	return cmd
}

func (ec *ExportCommand) run(cmd *cobra.Command, _ []string) error {
	progressWriter := cmd.ErrOrStderr()

	cfg, err := ec.deps.LoadConfig(ec.configPath)
	if err != nil {
		return err
	}

	startedAt := time.Now()

	progressf(ec.silent, progressWriter, "fetching records from %s.%s", cfg.Mongo.Database, cfg.Mongo.Collection)

	frame, fetched, err := computeFrame(cmd.Context(), cfg, ec.deps)
	if err != nil {
		return err
	}

	progressf(ec.silent, progressWriter, "aggregated %d records into %d years in %s",
		fetched, frame.Len(), time.Since(startedAt).Round(time.Millisecond))

	var buf bytes.Buffer

	err = report.WriteCSV(&buf, frame)
	if err != nil {
		return err
	}

	if ec.output == "-" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		if err != nil {
			return fmt.Errorf("write csv: %w", err)
		}

		return nil
	}

	err = os.WriteFile(ec.output, buf.Bytes(), 0o644)
	if err != nil {
		return fmt.Errorf("write %s: %w", ec.output, err)
	}

	progressf(ec.silent, progressWriter, "export written to %s", ec.output)

	return nil
}
