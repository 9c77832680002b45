package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of a request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrVersionIsNotSpecified is returned when the application version is
	// missing from the configuration.
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrNoteStoreFailure is returned on the client when the note store
	// reports a storage failure.
	ErrNoteStoreFailure = errors.New("note store failure")

	// ErrNoteStoreUnavailable is returned on the client when the note store
	// cannot be reached.
	ErrNoteStoreUnavailable = errors.New("note store unavailable")

	// ErrEncodingNote is returned on the client when a note body does not
	// match its category.
	ErrEncodingNote = errors.New("error encoding note content")
)
