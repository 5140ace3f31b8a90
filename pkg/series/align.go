package series

import "sort"

// Frame is the aligned output of a computation: Years is strictly
// ascending with no duplicates, and the three count slices are
// parallel to it, zero-padded for years a given map did not touch.
type Frame struct {
	Years    []int
	Presence []int
	New      []int
	Credits  []int
}

// Len returns the number of aligned rows.
func (f Frame) Len() int {
	return len(f.Years)
}

// Build merges the three aggregation maps into a Frame. Years is the
// sorted union of all keys appearing in any map; each output slice is
// indexed in lockstep with Years, with 0 filling the gaps. The result
// is deterministic for a given input.
func Build(presence, starts, credits map[int]int) Frame {
	seen := make(map[int]struct{}, len(presence))
	years := make([]int, 0, len(presence))

	for _, m := range []map[int]int{presence, starts, credits} {
		for year := range m {
			if _, dup := seen[year]; dup {
				continue
			}

			seen[year] = struct{}{}
			years = append(years, year)
		}
	}

	sort.Ints(years)

	frame := Frame{
		Years:    years,
		Presence: make([]int, len(years)),
		New:      make([]int, len(years)),
		Credits:  make([]int, len(years)),
	}

	for i, year := range years {
		frame.Presence[i] = presence[year]
		frame.New[i] = starts[year]
		frame.Credits[i] = credits[year]
	}

	return frame
}
