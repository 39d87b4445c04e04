package appearance

// Intersect returns the overlaps of two sets.
// Both a and b must already be normalized, this is not checked.
// The result is itself normalized.
func Intersect(a, b IntervalSet) IntervalSet {
	result := make(IntervalSet, 0, minOf(len(a), len(b)))

	var ixA, ixB int

	for ixA < len(a) && ixB < len(b) {
		overlap := TimeInterval{
			TimeStart: maxOf(a[ixA].TimeStart, b[ixB].TimeStart),
			TimeEnd:   minOf(a[ixA].TimeEnd, b[ixB].TimeEnd),
		}

		if !overlap.IsEmpty() {
			result = append(result, overlap)
		}

		// on equal ends b advances
		if a[ixA].TimeEnd < b[ixB].TimeEnd {
			ixA++

			continue
		}

		ixB++
	}

	return result
}
