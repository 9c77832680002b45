package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/coffee-notes/internal/app"
	"github.com/MKhiriev/coffee-notes/internal/service"
	"github.com/MKhiriev/coffee-notes/internal/store"
	"github.com/MKhiriev/coffee-notes/internal/validators"
)

// errInvalidJSON is returned when a request body cannot be decoded.
var errInvalidJSON = errors.New("invalid JSON was passed")

var errorStatusMap = map[error]int{
	errInvalidJSON:                 http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrNoteNotFound:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages are the operation specific messages written for missing
// fields and for store failures.
type errorMessages struct {
	missingFields string
	failed        string
}

var defaultErrorMessages = errorMessages{
	missingFields: app.MsgMissingRequiredFields,
	failed:        app.MsgInternalServerError,
}

// messageFromError picks the client-facing message for err.
func messageFromError(err error, msgs errorMessages) string {
	switch {
	case errors.Is(err, errInvalidJSON):
		return app.MsgInvalidDataProvided
	case errors.Is(err, validators.ErrUnknownCategory):
		return app.MsgUnknownCategory
	case errors.Is(err, validators.ErrMissingFields):
		return msgs.missingFields
	case errors.Is(err, validators.ErrInvalidID), errors.Is(err, validators.ErrInvalidPosition):
		return app.MsgInvalidDataProvided
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgInvalidDataProvided
	default:
		return msgs.failed
	}
}
