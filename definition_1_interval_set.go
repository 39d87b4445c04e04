package appearance

import (
	"strings"
)

// IntervalSet is sorted ascending by start, holds no empty intervals
// and no two consecutive intervals overlap or touch.
type IntervalSet []TimeInterval

func (set IntervalSet) TotalLength() int64 {
	var result int64

	for _, interval := range set {
		result = result + interval.Length()
	}

	return result
}

// IsNormalized reports whether the set holds the IntervalSet invariant.
func (set IntervalSet) IsNormalized() bool {
	for ix, interval := range set {
		if interval.IsEmpty() {
			return false
		}

		if ix > 0 && interval.TimeStart <= set[ix-1].TimeEnd {
			return false
		}
	}

	return true
}

func (set IntervalSet) String() string {
	if len(set) == 0 {
		return "IntervalSet: (empty)"
	}

	var sb strings.Builder

	sb.WriteString("IntervalSet:")

	for _, interval := range set {
		sb.WriteString(" ")
		sb.WriteString(interval.String())
	}

	return sb.String()
}
