package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/showlens/showlens/pkg/series"
)

// MissingMarker fills cells of columns shorter than the longest one,
// so a tabular export never silently misaligns its rows.
const MissingMarker = "NaN"

// csvHeader matches the export columns, in order.
var csvHeader = []string{"Year", "Total Series in Production", "New Series", "Professionals"}

// WriteCSV serializes a frame as CSV, one row per aligned year. A
// built frame has equal-length columns; should a caller hand in a
// frame with ragged columns, the short ones are padded with the
// explicit missing marker rather than truncated.
func WriteCSV(w io.Writer, frame series.Frame) error {
	columns := [][]int{frame.Years, frame.Presence, frame.New, frame.Credits}

	rows := 0
	for _, column := range columns {
		if len(column) > rows {
			rows = len(column)
		}
	}

	writer := csv.NewWriter(w)

	err := writer.Write(csvHeader)
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i := range rows {
		row := make([]string, len(columns))
		for c, column := range columns {
			row[c] = cell(column, i)
		}

		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	writer.Flush()

	err = writer.Error()
	if err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

func cell(column []int, i int) string {
	if i >= len(column) {
		return MissingMarker
	}

	return strconv.Itoa(column[i])
}
