package repository

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the repositories. Handlers switch on these to
// pick the right HTTP status instead of inspecting driver errors.
var (
	ErrNotFound       = errors.New("record not found")
	ErrUsernameExists = errors.New("username already exists")
)

// ValidationError reports a field-level problem caught before any state
// change. Handlers map it to a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MediaInUseError blocks deletion of a media record that project images
// still reference. Count is the number of references found.
type MediaInUseError struct {
	Count int64
}

func (e *MediaInUseError) Error() string {
	return fmt.Sprintf("media is in use by %d project image(s)", e.Count)
}
