package appearance

import (
	"errors"

	goerrors "github.com/TudorHulban/go-errors"
)

const (
	KeyLesson = "lesson"
	KeyPupil  = "pupil"
	KeyTutor  = "tutor"
)

var errMalformedLesson = errors.New("lesson must hold exactly start and end")

// JointPresence returns the intervals when both pupil and tutor
// were present within the lesson.
func JointPresence(record *PresenceRecord) (IntervalSet, error) {
	if errValidation := record.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	pupil, errPupil := DecodePresence(record.Pupil)
	if errPupil != nil {
		return nil,
			errPupil
	}

	tutor, errTutor := DecodePresence(record.Tutor)
	if errTutor != nil {
		return nil,
			errTutor
	}

	return Intersect(
			Normalize(
				Clip(pupil, record.Lesson.TimeStart, record.Lesson.TimeEnd),
			),
			Normalize(
				Clip(tutor, record.Lesson.TimeStart, record.Lesson.TimeEnd),
			),
		),
		nil
}

// TotalOverlap returns the seconds both pupil and tutor were present within the lesson.
func TotalOverlap(record *PresenceRecord) (int64, error) {
	overlaps, errOverlaps := JointPresence(record)
	if errOverlaps != nil {
		return 0,
			errOverlaps
	}

	return overlaps.TotalLength(),
		nil
}

// Appearance accepts the presence record as a map keyed lesson, pupil and tutor.
func Appearance(intervals map[string][]int64) (int64, error) {
	for _, key := range []string{KeyLesson, KeyPupil, KeyTutor} {
		if _, exists := intervals[key]; !exists {
			return 0,
				goerrors.ErrValidation{
					Caller: "Appearance",
					Issue: goerrors.ErrNilInput{
						InputName: key,
					},
				}
		}
	}

	lesson := intervals[KeyLesson]
	if len(lesson) != 2 {
		return 0,
			goerrors.ErrInvalidInput{
				Caller:     "Appearance",
				InputName:  KeyLesson,
				InputValue: lesson,
				Issue:      errMalformedLesson,
			}
	}

	return TotalOverlap(
		&PresenceRecord{
			Lesson: TimeInterval{
				TimeStart: lesson[0],
				TimeEnd:   lesson[1],
			},
			Pupil: intervals[KeyPupil],
			Tutor: intervals[KeyTutor],
		},
	)
}
