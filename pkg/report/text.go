package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/showlens/showlens/pkg/series"
)

// WriteSummary prints the frame as a terminal table with per-column
// totals, for a quick look without a browser. Colors are skipped when
// noColor is set or stdout is not a terminal (the color package
// handles the latter itself).
func WriteSummary(w io.Writer, frame series.Frame, noColor bool) error {
	heading := color.New(color.Bold, color.FgCyan)
	if noColor {
		heading.DisableColor()
	}

	_, err := heading.Fprintf(w, "Series production by year (%d years)\n", frame.Len())
	if err != nil {
		return fmt.Errorf("write summary heading: %w", err)
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Year", "Total Series in Production", "New Series", "Professionals"})

	var totalPresence, totalNew, totalCredits int

	for i, year := range frame.Years {
		tbl.AppendRow(table.Row{year, frame.Presence[i], frame.New[i], frame.Credits[i]})

		totalPresence += frame.Presence[i]
		totalNew += frame.New[i]
		totalCredits += frame.Credits[i]
	}

	tbl.AppendFooter(table.Row{
		"Total",
		humanize.Comma(int64(totalPresence)),
		humanize.Comma(int64(totalNew)),
		humanize.Comma(int64(totalCredits)),
	})

	tbl.Render()

	return nil
}
