// Package report renders an aligned frame for human consumption: an
// interactive HTML dashboard, a CSV export, or a terminal summary.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/showlens/showlens/pkg/series"
)

// ChartKind selects the rendering of both dashboard charts.
type ChartKind string

// Supported chart kinds.
const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

const (
	colorNewSeries     = "rgba(135, 206, 250, 0.8)"
	colorTotalSeries   = "rgba(255, 87, 34, 0.8)"
	colorProfessionals = "rgba(50, 171, 96, 0.7)"

	titleProduction    = "Series in Production per Year"
	titleProfessionals = "Total Professionals per Year"

	seriesNameNew           = "New Series"
	seriesNameTotal         = "Total Series in Production"
	seriesNameProfessionals = "Professionals"

	fullZoomPct = 100
)

// ErrUnknownChartKind is returned for chart kinds other than bar and line.
var ErrUnknownChartKind = errors.New("unknown chart kind")

// ParseChartKind validates a chart kind string.
func ParseChartKind(s string) (ChartKind, error) {
	switch ChartKind(s) {
	case ChartBar, ChartLine:
		return ChartKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want bar or line)", ErrUnknownChartKind, s)
	}
}

// WriteDashboard renders both charts as one HTML page: series in
// production per year (new vs. total) and professional credits per
// year. The frame is read-only; rendering twice yields the same page.
func WriteDashboard(w io.Writer, frame series.Frame, kind ChartKind) error {
	production, err := buildChart(kind, chartSpec{
		Title:  titleProduction,
		YLabel: "Series",
		Labels: yearLabels(frame.Years),
		Series: []chartSeries{
			{Name: seriesNameNew, Data: frame.New, Color: colorNewSeries},
			{Name: seriesNameTotal, Data: frame.Presence, Color: colorTotalSeries},
		},
	})
	if err != nil {
		return err
	}

	credits, err := buildChart(kind, chartSpec{
		Title:  titleProfessionals,
		YLabel: "Professionals",
		Labels: yearLabels(frame.Years),
		Series: []chartSeries{
			{Name: seriesNameProfessionals, Data: frame.Credits, Color: colorProfessionals},
		},
	})
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.PageTitle = "Series Production Dashboard"
	page.AddCharts(production, credits)

	err = page.Render(w)
	if err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}

	return nil
}

type chartSeries struct {
	Name  string
	Data  []int
	Color string
}

type chartSpec struct {
	Title  string
	YLabel string
	Labels []string
	Series []chartSeries
}

func buildChart(kind ChartKind, spec chartSpec) (components.Charter, error) {
	switch kind {
	case ChartBar:
		return buildBarChart(spec), nil
	case ChartLine:
		return buildLineChart(spec), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChartKind, kind)
	}
}

func buildBarChart(spec chartSpec) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(spec)...)
	bar.SetXAxis(spec.Labels)

	for _, s := range spec.Series {
		data := make([]opts.BarData, len(s.Data))
		for i, v := range s.Data {
			data[i] = opts.BarData{Value: v}
		}

		bar.AddSeries(s.Name, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
	}

	return bar
}

func buildLineChart(spec chartSpec) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(spec)...)
	line.SetXAxis(spec.Labels)

	for _, s := range spec.Series {
		data := make([]opts.LineData, len(s.Data))
		for i, v := range s.Data {
			data[i] = opts.LineData{Value: v}
		}

		line.AddSeries(s.Name, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		)
	}

	return line
}

func globalOptions(spec chartSpec) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: spec.Title, Left: "2%"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "0"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: 0, End: fullZoomPct},
			opts.DataZoom{Type: "inside"},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: "Years"}),
		charts.WithYAxisOpts(opts.YAxis{Name: spec.YLabel}),
	}
}

func yearLabels(years []int) []string {
	labels := make([]string, len(years))
	for i, year := range years {
		labels[i] = strconv.Itoa(year)
	}

	return labels
}
