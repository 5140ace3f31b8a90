// Package record defines the raw document shape and the field
// classifier that turns schemaless values into well-typed fields.
package record

import "math"

// Default field names. Datasets that name their columns differently
// (the original corpus used "number of seasons") override these via
// configuration.
const (
	DefaultYearField    = "year"
	DefaultSeasonsField = "seasons"
)

// Record is one raw document from a record source: an unordered
// mapping of field name to value. The classifier is the only place
// that inspects value shapes; everything downstream works on
// classified fields.
type Record map[string]any

// Fields holds the classified temporal fields of a single record.
type Fields struct {
	// Year is the production start year. Only meaningful when HasYear is set.
	Year int
	// HasYear reports whether the year field was present and integer-valued.
	HasYear bool
	// Seasons is the production window length in years, always >= 1.
	Seasons int
}

// Classifier resolves the year and season-count fields of a record
// into typed values. The zero value is not usable; construct with
// NewClassifier.
type Classifier struct {
	YearField    string
	SeasonsField string
}

// NewClassifier returns a classifier using the default field names.
func NewClassifier() Classifier {
	return Classifier{
		YearField:    DefaultYearField,
		SeasonsField: DefaultSeasonsField,
	}
}

// Classify resolves the temporal fields of rec. The year is taken
// only when present and integer-valued; the season count defaults to
// 1 when absent, null, of the wrong shape, or not positive. Zero and
// negative season counts coerce to 1 so a record never expands to an
// empty or negative window. Classify is pure and never fails.
func (c Classifier) Classify(rec Record) Fields {
	fields := Fields{Seasons: 1}

	year, ok := intValue(rec[c.YearField])
	if ok {
		fields.Year = year
		fields.HasYear = true
	}

	seasons, ok := intValue(rec[c.SeasonsField])
	if ok && seasons > 0 {
		fields.Seasons = seasons
	}

	return fields
}

// intValue extracts an integer from a document-store numeric. BSON
// decodes numbers as int32, int64 or float64 depending on the wire
// type; in-memory fixtures use plain int. Floats count only when
// integer-valued.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}

		return int(n), true
	default:
		return 0, false
	}
}
