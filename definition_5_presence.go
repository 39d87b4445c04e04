package appearance

import (
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

const _TagEvenLength = "evenlength"

func init() {
	govalidator.CustomTypeTagMap.Set(
		_TagEvenLength,
		func(field any, _ any) bool {
			values, ok := field.([]int64)
			if !ok {
				return false
			}

			return len(values)%2 == 0
		},
	)
}

// PresenceRecord holds the lesson window and the flat start,end,start,end
// presence sequences of both parties.
type PresenceRecord struct {
	Lesson TimeInterval

	Pupil []int64 `valid:"evenlength~pupil presence sequence must hold start and end pairs"`
	Tutor []int64 `valid:"evenlength~tutor presence sequence must hold start and end pairs"`
}

func (record *PresenceRecord) IsValid() error {
	if record == nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - PresenceRecord",
			Issue: goerrors.ErrNilInput{
				InputName: "record",
			},
		}
	}

	if _, errValidation := govalidator.ValidateStruct(record); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Appearance",
			Caller:      "IsValid - PresenceRecord",
			Issue:       errValidation,
		}
	}

	return nil
}

// DecodePresence groups a flat sequence into intervals,
// even positions being starts and odd positions ends.
func DecodePresence(flat []int64) ([]TimeInterval, error) {
	if len(flat)%2 != 0 {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "DecodePresence",
				InputName:  "flat",
				InputValue: len(flat),
				Issue: fmt.Errorf(
					"odd length %d, trailing value %d has no end",
					len(flat),
					flat[len(flat)-1],
				),
			}
	}

	result := make([]TimeInterval, 0, len(flat)/2)

	for ix := 0; ix < len(flat); ix = ix + 2 {
		result = append(
			result,
			TimeInterval{
				TimeStart: flat[ix],
				TimeEnd:   flat[ix+1],
			},
		)
	}

	return result, nil
}
