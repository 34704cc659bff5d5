package attendance

import "errors"

var (
	ErrEventNotFound    = errors.New("attendance event not found")
	ErrInvalidEventKind = errors.New("invalid attendance event kind")
	ErrInvalidWindow    = errors.New("window start must be before window end")
)
