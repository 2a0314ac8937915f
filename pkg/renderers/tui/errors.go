package tui

import "errors"

var (
	// ErrAborted is returned when the user interrupts the prompt session.
	ErrAborted = errors.New("tui: session aborted")

	// ErrStillInvalid is returned when the form remains invalid after the
	// configured number of prompt attempts per field.
	ErrStillInvalid = errors.New("tui: form is still invalid")
)
