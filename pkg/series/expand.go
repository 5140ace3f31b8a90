// Package series implements the temporal aggregation core: expanding
// production windows into per-year presence counts, summing credit
// lists per start year, and aligning the results into a chronological
// frame ready for charting or export.
package series

import "github.com/showlens/showlens/pkg/record"

// Expand walks the record set once and accumulates two maps: presence
// counts (how many series were in production in a given year) and
// start counts (how many series started in a given year).
//
// A record with start year Y and season count S contributes 1 to
// starts[Y] and 1 to presence[y] for every y in the half-open window
// [Y, Y+S). Records without a valid year contribute to neither map.
// The window is not clamped; a pathological season count expands to a
// correspondingly wide range. Callers always receive fresh maps.
func Expand(records []record.Record, classifier record.Classifier) (presence, starts map[int]int) {
	presence = make(map[int]int)
	starts = make(map[int]int)

	for _, rec := range records {
		fields := classifier.Classify(rec)
		if !fields.HasYear {
			continue
		}

		starts[fields.Year]++

		for y := fields.Year; y < fields.Year+fields.Seasons; y++ {
			presence[y]++
		}
	}

	return presence, starts
}
