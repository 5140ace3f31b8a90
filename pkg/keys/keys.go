// Package keys loads the ordered list of credit-field names from a
// small CSV configuration file.
package keys

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Column is the required header of the credit-field column.
const Column = "keys_to_consider"

// ErrMissingColumn is returned when the CSV header lacks the required
// credit-field column.
var ErrMissingColumn = errors.New("missing required column")

// ErrEmptyFile is returned when the CSV file has no header row.
var ErrEmptyFile = errors.New("keys file is empty")

// Load reads the ordered credit-field names from the CSV file at
// path. The file must carry a header row containing the
// "keys_to_consider" column; values are taken from that column in
// file order, with blank cells skipped. There is no fallback list: a
// missing or malformed file is the caller's problem to surface.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keys file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may carry unrelated columns of varying width

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read keys file %s: %w", path, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	column := -1

	for i, header := range rows[0] {
		if strings.TrimSpace(header) == Column {
			column = i

			break
		}
	}

	if column == -1 {
		return nil, fmt.Errorf("%w: %s in %s", ErrMissingColumn, Column, path)
	}

	var fields []string

	for _, row := range rows[1:] {
		if column >= len(row) {
			continue
		}

		value := strings.TrimSpace(row[column])
		if value == "" {
			continue
		}

		fields = append(fields, value)
	}

	return fields, nil
}
