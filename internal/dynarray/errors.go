package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is matched by every *BoundsError.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidCapacity is returned for a non-positive initial capacity.
	ErrInvalidCapacity = errors.New("initial capacity must be at least 1")
)

// BoundsError reports an index outside the range an operation permits.
type BoundsError struct {
	// Op is the rejecting operation: "insert", "remove_at" or "get".
	Op string

	// Index is the rejected index.
	Index int

	// Size is the array length at the time of the call.
	Size int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds [0, %d%s", e.Op, e.Index, e.Size, e.closer())
}

// Is makes errors.Is(err, ErrOutOfBounds) hold for any *BoundsError.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// closer renders the upper end of the valid range: insert may address
// one past the last element.
func (e *BoundsError) closer() string {
	if e.Op == opInsert {
		return "]"
	}
	return ")"
}

// IsBoundsError reports whether err is or wraps a *BoundsError.
func IsBoundsError(err error) bool {
	var be *BoundsError
	return errors.As(err, &be)
}
