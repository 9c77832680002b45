package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values the validator has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when a scoped field name does not exist on
	// the validated request.
	ErrUnknownField = errors.New("unknown field for validation")

	// ErrMissingFields is returned when a required field is absent or empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrUnknownCategory is returned when a note category is not one of the
	// known categories.
	ErrUnknownCategory = errors.New("unknown note category")

	// ErrInvalidPosition is returned for non-finite coordinates and for
	// coordinates outside the 32-bit integer range once floored.
	ErrInvalidPosition = errors.New("invalid note position")

	// ErrInvalidID is returned when a note identifier is not a UUID.
	ErrInvalidID = errors.New("invalid note identifier")
)
