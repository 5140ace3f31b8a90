// Package main provides the entry point for the showlens CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/showlens/showlens/cmd/showlens/commands"
	"github.com/showlens/showlens/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "showlens",
		Short: "Showlens - series production analytics dashboard",
		Long: `Showlens aggregates media-series documents into yearly time series:
series in production, new series, and professional credits per year.

Commands:
  plot      Render the interactive HTML dashboard
  export    Export the computed series as CSV
  stats     Print the computed series as a table
  serve     Serve the dashboard over HTTP`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "showlens %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
