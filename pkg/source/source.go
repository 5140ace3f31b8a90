// Package source provides record sources: collaborators that
// materialize the full document set the aggregation core works on.
package source

import (
	"context"

	"github.com/showlens/showlens/pkg/record"
)

// Source yields the complete record set in one call. Implementations
// own all blocking and failure handling; a successful FetchAll
// returns a finite, fully materialized slice the core can process
// without further I/O.
type Source interface {
	FetchAll(ctx context.Context) ([]record.Record, error)
}

// Memory is an in-memory source, used in tests and as a seam for
// command-level dependency injection.
type Memory struct {
	Records []record.Record
}

// FetchAll returns a fresh copy of the slice so callers cannot
// disturb the backing record set.
func (m *Memory) FetchAll(_ context.Context) ([]record.Record, error) {
	out := make([]record.Record, len(m.Records))
	copy(out, m.Records)

	return out, nil
}
