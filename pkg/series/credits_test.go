package series //nolint:testpackage // testing internal implementation.

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/showlens/showlens/pkg/record"
)

func TestAggregateCredits_SumsNamedFields(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{"year": 2000, "cast": []any{"a", "b"}, "writers": []any{"c"}},
	}

	totals := AggregateCredits(records, record.NewClassifier(), []string{"cast", "writers"})

	require.Equal(t, map[int]int{2000: 3}, totals)
}

func TestAggregateCredits_IgnoresUnlistedFields(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{"year": 2000, "cast": []any{"a", "b"}, "directors": []any{"d", "e", "f"}},
	}

	totals := AggregateCredits(records, record.NewClassifier(), []string{"cast"})

	require.Equal(t, map[int]int{2000: 2}, totals)
}

func TestAggregateCredits_AbsentFieldContributesZero(t *testing.T) {
	t.Parallel()

	records := []record.Record{{"year": 2001}}

	totals := AggregateCredits(records, record.NewClassifier(), []string{"cast", "writers"})

	require.Equal(t, map[int]int{}, totals)
}

func TestAggregateCredits_NonSequenceContributesZero(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{"year": 2002, "cast": "Jane Doe", "writers": 7, "crew": nil, "producers": []any{"p"}},
	}

	totals := AggregateCredits(records, record.NewClassifier(), []string{"cast", "writers", "crew", "producers"})

	require.Equal(t, map[int]int{2002: 1}, totals)
}

func TestAggregateCredits_SkipsRecordsWithoutYear(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{"cast": []any{"a", "b"}},
		{"year": "2003", "cast": []any{"a"}},
	}

	totals := AggregateCredits(records, record.NewClassifier(), []string{"cast"})

	require.Empty(t, totals)
}

func TestAggregateCredits_CreditsGoToStartYearOnly(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{"year": 2000, "seasons": 5, "cast": []any{"a", "b", "c"}},
	}

	totals := AggregateCredits(records, record.NewClassifier(), []string{"cast"})

	require.Equal(t, map[int]int{2000: 3}, totals, "credits attach to the start year, not the window")
}

func TestSequenceLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		wantLen int
		wantOK  bool
	}{
		{"any slice", []any{1, 2, 3}, 3, true},
		{"string slice", []string{"a"}, 1, true},
		{"empty slice", []any{}, 0, true},
		{"string", "abc", 0, false},
		{"int", 5, 0, false},
		{"map", map[string]any{"a": 1}, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			length, ok := sequenceLen(tt.value)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantLen, length)
		})
	}
}
