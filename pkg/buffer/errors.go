package buffer

import "github.com/juju/errors"

// Errors returned by GapBuffer operations. They are annotated with the
// offending arguments at the call site; match them with errors.Is.
var (
	// ErrOutOfRange is returned when a logical index falls outside the
	// range accepted by the operation.
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmpty is returned when an element is requested from an empty
	// buffer.
	ErrEmpty = errors.New("buffer is empty")

	// ErrNegativeCount is returned when a negative count is passed to an
	// operation whose direction is already fixed by its name.
	ErrNegativeCount = errors.New("negative count")
)
