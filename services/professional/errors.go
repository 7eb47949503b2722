package professional

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown professional category")
	ErrInvalidRate     = errors.New("hourly rate must not be negative")
	ErrEmailRequired   = errors.New("email is required")
	ErrAccountNotFound = errors.New("no professional registered with that email")
	ErrSessionNotFound = errors.New("deletion session not found or expired")
	ErrInvalidStep     = errors.New("operation not allowed at current deletion step")
)
