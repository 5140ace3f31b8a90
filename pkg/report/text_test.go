package report //nolint:testpackage // testing internal implementation.

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/showlens/showlens/pkg/series"
)

func TestWriteSummary_TableAndTotals(t *testing.T) {
	t.Parallel()

	frame := series.Frame{
		Years:    []int{2010, 2011},
		Presence: []int{1200, 300},
		New:      []int{2, 0},
		Credits:  []int{0, 7},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, frame, true))

	out := buf.String()
	require.Contains(t, out, "2010")
	require.Contains(t, out, "2011")
	require.Contains(t, out, "1,500", "footer should carry the humanized presence total")
	require.Contains(t, out, "PROFESSIONALS", "go-pretty uppercases headers")
	require.Contains(t, out, "2 years")
}

func TestWriteSummary_EmptyFrame(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, series.Frame{}, true))
	require.Contains(t, buf.String(), "0 years")
}
