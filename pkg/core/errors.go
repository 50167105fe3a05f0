package core

import "errors"

// I/O failures. They end the current invocation.
var (
	ErrReadFailure  = errors.New("datastore read failure")
	ErrWriteFailure = errors.New("datastore write failure")
)

// Logical outcomes. Callers report them and may carry on.
var (
	ErrDuplicateID = errors.New("a note with specified ID already exists")
	ErrNotFound    = errors.New("could not find the note with specified ID")
	ErrEmptyStore  = errors.New("the datastore does not contain any notes")
)

// ErrInvalidArgument is returned for a bad store name, an empty ID or name,
// or a malformed match pattern.
var ErrInvalidArgument = errors.New("invalid argument")

// IsInformational reports whether err is a logical outcome rather than a failure.
func IsInformational(err error) bool {
	return errors.Is(err, ErrDuplicateID) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrEmptyStore)
}
