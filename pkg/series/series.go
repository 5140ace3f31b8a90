package series

import "github.com/showlens/showlens/pkg/record"

// Compute runs the full aggregation pipeline over an in-memory record
// set: classify, expand production windows, sum credits, align. It is
// pure and idempotent; invoking it twice on the same records yields
// identical frames. The record set is never mutated.
func Compute(records []record.Record, classifier record.Classifier, creditFields []string) Frame {
	presence, starts := Expand(records, classifier)
	credits := AggregateCredits(records, classifier, creditFields)

	return Build(presence, starts, credits)
}
