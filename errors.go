package colorcode

import "github.com/pkg/errors"

// Pipeline errors.
var (
	// ErrResolutionTooFine is returned when no level of the schedule yields
	// a block of at least MinBlockSize pixels.
	ErrResolutionTooFine = errors.New("colorcode: resolution too fine, try a smaller level count")

	// ErrInvalidLevelCount is returned for a level count below 1.
	ErrInvalidLevelCount = errors.New("colorcode: level count must be positive")

	// ErrUnknownSchedule is returned by ParseSchedule for unknown names.
	ErrUnknownSchedule = errors.New("colorcode: unknown schedule")

	// ErrNilSource is returned when Run is given a nil buffer.
	ErrNilSource = errors.New("colorcode: nil source buffer")
)
