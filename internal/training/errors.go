package training

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutType is returned for a workout code nobody registered.
	ErrUnknownWorkoutType = errors.New("unrecognized workout type")
	// ErrArityMismatch is matched by every *ArityError.
	ErrArityMismatch = errors.New("wrong number of readings for workout type")
	// ErrDuplicateWorkoutType is returned when a code is registered twice.
	ErrDuplicateWorkoutType = errors.New("workout type already registered")
	// ErrNoTraining is returned when a registered builder produces nothing.
	ErrNoTraining = errors.New("builder returned no training")

	ErrInvalidDuration = errors.New("duration must be greater than zero")
	ErrInvalidHeight   = errors.New("height must be greater than zero")
	ErrNotInteger      = errors.New("reading must be a whole number")
)

// ArityError reports a package whose reading count does not match its workout type.
type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("workout type %s expects %d readings, got %d", e.Code, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArityMismatch
}
