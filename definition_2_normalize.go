package appearance

import "sort"

// Normalize sorts and merges overlapping or touching intervals.
// Empty intervals are dropped. The passed slice is not modified.
func Normalize(intervals []TimeInterval) IntervalSet {
	sorted := make([]TimeInterval, 0, len(intervals))

	for _, interval := range intervals {
		if interval.IsEmpty() {
			continue
		}

		sorted = append(sorted, interval)
	}

	if len(sorted) == 0 {
		return IntervalSet{}
	}

	sort.Slice(
		sorted,
		func(i, j int) bool {
			if sorted[i].TimeStart != sorted[j].TimeStart {
				return sorted[i].TimeStart < sorted[j].TimeStart
			}

			return sorted[i].TimeEnd < sorted[j].TimeEnd
		},
	)

	result := make(IntervalSet, 0, len(sorted))
	current := sorted[0]

	for _, interval := range sorted[1:] {
		// touching intervals merge too
		if interval.TimeStart <= current.TimeEnd {
			current.TimeEnd = maxOf(current.TimeEnd, interval.TimeEnd)

			continue
		}

		result = append(result, current)
		current = interval
	}

	return append(result, current)
}
