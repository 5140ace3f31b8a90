package report //nolint:testpackage // testing internal implementation.

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/showlens/showlens/pkg/series"
)

func testFrame() series.Frame {
	return series.Frame{
		Years:    []int{2010, 2011, 2012},
		Presence: []int{2, 1, 1},
		New:      []int{2, 0, 1},
		Credits:  []int{0, 0, 2},
	}
}

func TestParseChartKind(t *testing.T) {
	t.Parallel()

	kind, err := ParseChartKind("bar")
	require.NoError(t, err)
	require.Equal(t, ChartBar, kind)

	kind, err = ParseChartKind("line")
	require.NoError(t, err)
	require.Equal(t, ChartLine, kind)

	_, err = ParseChartKind("pie")
	require.ErrorIs(t, err, ErrUnknownChartKind)
}

func TestWriteDashboard_Bar(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteDashboard(&buf, testFrame(), ChartBar))

	html := buf.String()
	require.Contains(t, html, titleProduction)
	require.Contains(t, html, titleProfessionals)
	require.Contains(t, html, seriesNameNew)
	require.Contains(t, html, seriesNameTotal)
	require.Contains(t, html, seriesNameProfessionals)
	require.Contains(t, html, "2011", "x axis should carry the year labels")
}

func TestWriteDashboard_Line(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteDashboard(&buf, testFrame(), ChartLine))

	require.Contains(t, buf.String(), titleProduction)
	require.Contains(t, buf.String(), titleProfessionals)
}

func TestWriteDashboard_UnknownKind(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteDashboard(&buf, testFrame(), ChartKind("scatter"))
	require.ErrorIs(t, err, ErrUnknownChartKind)
}

func TestWriteDashboard_EmptyFrame(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteDashboard(&buf, series.Frame{}, ChartBar))
	require.Greater(t, buf.Len(), 0)
}
