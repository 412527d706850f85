package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateIdentity means the national ID is already registered.
	ErrDuplicateIdentity = errors.New("national ID already registered")
	// ErrInvalidSelectionSize means the chosen-workshop count is outside [1, 3].
	ErrInvalidSelectionSize = errors.New("select between 1 and 3 workshops")
	// ErrDuplicateSelection means the same workshop was chosen more than
	// once; enrollment per workshop is a set.
	ErrDuplicateSelection = errors.New("the same workshop was chosen more than once")
)

// UnknownWorkshopError reports a chosen title with no matching workshop.
type UnknownWorkshopError struct {
	Title string
}

func (e *UnknownWorkshopError) Error() string {
	return fmt.Sprintf("workshop %q does not exist", e.Title)
}

// WorkshopFullError reports a chosen workshop with no remaining seats.
type WorkshopFullError struct {
	Title    string
	MaxSeats int
}

func (e *WorkshopFullError) Error() string {
	return fmt.Sprintf("workshop %q is full (max: %d)", e.Title, e.MaxSeats)
}
