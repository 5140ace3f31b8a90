package series

import (
	"reflect"

	"github.com/showlens/showlens/pkg/record"
)

// AggregateCredits sums, per start year, the number of entries across
// the named credit fields of each record. A record contributes its
// credits to the year it started in, regardless of window length.
//
// Field lookup is defensive: a field absent from a record contributes
// 0, and so does a present value that is not a sequence. Records
// without a valid year are skipped entirely. The aggregation is total
// and side-effect free; it never fails on malformed input.
func AggregateCredits(records []record.Record, classifier record.Classifier, creditFields []string) map[int]int {
	totals := make(map[int]int)

	for _, rec := range records {
		fields := classifier.Classify(rec)
		if !fields.HasYear {
			continue
		}

		for _, name := range creditFields {
			value, found := rec[name]
			if !found {
				continue
			}

			length, ok := sequenceLen(value)
			if !ok {
				continue
			}

			totals[fields.Year] += length
		}
	}

	return totals
}

// sequenceLen reports the length of v when it is a sequence. BSON
// arrays decode to bson.A (a named []any) and in-memory fixtures use
// plain slices, so the check goes through reflection rather than a
// fixed set of types. Strings are not sequences here.
func sequenceLen(v any) (int, bool) {
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 0, false
	}

	return rv.Len(), true
}
