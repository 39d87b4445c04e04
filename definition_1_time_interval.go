package appearance

import (
	"errors"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
)

// TimeInterval covers [TimeStart, TimeEnd) in seconds.
// Lengths are computed in int64, so bounds must stay within
// a range whose difference fits, epoch seconds being well inside it.
type TimeInterval struct {
	TimeStart int64
	TimeEnd   int64
}

// NewTimeInterval rejects a start after the end.
// Equal start and end give a valid but empty interval.
// Raw presence pairs are not built through it: reversed pairs
// are kept as empty intervals and dropped by Clip and Normalize.
func NewTimeInterval(timeStart, timeEnd int64) (TimeInterval, error) {
	if timeStart > timeEnd {
		return TimeInterval{},
			goerrors.ErrInvalidInput{
				Caller:     "NewTimeInterval",
				InputName:  "timeEnd",
				InputValue: timeEnd,
				Issue: errors.New(
					"time start greater than time end",
				),
			}
	}

	return TimeInterval{
			TimeStart: timeStart,
			TimeEnd:   timeEnd,
		},
		nil
}

func (interval TimeInterval) IsEmpty() bool {
	return interval.TimeStart >= interval.TimeEnd
}

func (interval TimeInterval) Length() int64 {
	if interval.IsEmpty() {
		return 0
	}

	return interval.TimeEnd - interval.TimeStart
}

func (interval TimeInterval) String() string {
	return fmt.Sprintf(
		"[%d-%d)",

		interval.TimeStart,
		interval.TimeEnd,
	)
}
