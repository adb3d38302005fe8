package canvas

import "errors"

// Sentinel errors for the canvas package.
// Only constructive operations return errors; setters silently ignore
// invalid input and keep the previous value.
var (
	// ErrRange is returned when a numeric argument lies outside its domain,
	// such as a gradient color stop offset outside [0, 1].
	ErrRange = errors.New("canvas: value out of range")

	// ErrInvalidArgument is returned when an argument is not one of the
	// accepted values, such as an unknown pattern repetition.
	ErrInvalidArgument = errors.New("canvas: invalid argument")
)
