package appearance

import (
	"math/rand"
)

const (
	oneMinute int64 = 60
	oneHour   int64 = 3600
)

var now int64 = 1594663200

// randomIntervals may hold empty and reversed intervals.
func randomIntervals(rnd *rand.Rand, maxCount int) []TimeInterval {
	count := rnd.Intn(maxCount + 1)

	result := make([]TimeInterval, count)

	for ix := range result {
		start := rnd.Int63n(100)

		result[ix] = TimeInterval{
			TimeStart: start,
			TimeEnd:   start + rnd.Int63n(35) - 5,
		}
	}

	return result
}

func flatten(intervals []TimeInterval) []int64 {
	result := make([]int64, 0, 2*len(intervals))

	for _, interval := range intervals {
		result = append(
			result,
			interval.TimeStart,
			interval.TimeEnd,
		)
	}

	return result
}
