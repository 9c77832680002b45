package likes

import "errors"

var (
	// ErrNoSession is returned when a toggle is attempted without a session
	// identifier in the context. The state is left untouched.
	ErrNoSession = errors.New("no session identifier")

	// ErrToggleInFlight is returned when a toggle for the same note has not
	// settled yet. The state is left untouched.
	ErrToggleInFlight = errors.New("like toggle already in flight")

	// ErrToggleAborted settles a transition whose store call never returned
	// normally.
	ErrToggleAborted = errors.New("like toggle aborted")
)
