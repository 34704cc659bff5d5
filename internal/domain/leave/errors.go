package leave

import "errors"

var (
	ErrRequestNotFound    = errors.New("leave request not found")
	ErrInvalidTransition  = errors.New("invalid leave request transition")
	ErrTransitionConflict = errors.New("leave request was modified concurrently")
)
