package codec

import "errors"

var (
	// ErrUnknownCategory is returned when the category is not one of the
	// allowed note categories.
	ErrUnknownCategory = errors.New("unknown note category")

	// ErrBodyMismatch is returned when the body shape does not match the
	// category: resource lists need a ListBody, every other category a TextBody.
	ErrBodyMismatch = errors.New("note body does not match category")

	// ErrEncodingBody is returned when the body cannot be serialized.
	ErrEncodingBody = errors.New("error encoding note body")
)
