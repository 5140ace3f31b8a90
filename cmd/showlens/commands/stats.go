package commands

import (
	"github.com/spf13/cobra"

	"github.com/showlens/showlens/pkg/report"
)

// StatsCommand holds configuration and dependencies for the stats command.
type StatsCommand struct {
	configPath string
	noColor    bool

	deps Dependencies
}

// NewStatsCommand creates the stats command: print the computed
// yearly series as a terminal table.
func NewStatsCommand() *cobra.Command {
	return newStatsCommandWithDeps(defaultDependencies())
}

func newStatsCommandWithDeps(deps Dependencies) *cobra.Command {
	sc := &StatsCommand{deps: deps}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the computed yearly series as a table",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.configPath, "config", "", "Config file path (default: .showlens.yaml in CWD or $HOME)")
	cmd.Flags().BoolVar(&sc.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (sc *StatsCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := sc.deps.LoadConfig(sc.configPath)
	if err != nil {
		return err
	}

	frame, _, err := computeFrame(cmd.Context(), cfg, sc.deps)
	if err != nil {
		return err
	}

	return report.WriteSummary(cmd.OutOrStdout(), frame, sc.noColor)
}
