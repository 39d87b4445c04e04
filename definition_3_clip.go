package appearance

// Clip restricts intervals to [boundStart, boundEnd), keeping input order.
// Intervals left empty are dropped, so a reversed bound yields nothing.
func Clip(intervals []TimeInterval, boundStart, boundEnd int64) []TimeInterval {
	result := make([]TimeInterval, 0, len(intervals))

	if boundStart > boundEnd {
		return result
	}

	for _, interval := range intervals {
		clipped := TimeInterval{
			TimeStart: maxOf(interval.TimeStart, boundStart),
			TimeEnd:   minOf(interval.TimeEnd, boundEnd),
		}

		if clipped.IsEmpty() {
			continue
		}

		result = append(result, clipped)
	}

	return result
}
