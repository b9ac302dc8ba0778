package booking

import (
	"errors"
	"fmt"
)

// Stage names the step of the booking chain an error came from. It is kept
// for logs and the audit trail; callers only ever see a generic failure.
type Stage string

const (
	StageWindow   Stage = "window"
	StageCalendar Stage = "calendar"
	StageSheet    Stage = "sheet"
	StageEmail    Stage = "email"
)

type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func Fail(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// StageOf returns the failing stage, or "" when err did not come from the
// booking chain.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
