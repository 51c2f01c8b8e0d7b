package geometry

import "errors"

var (
	// ErrInvalidArgument reports a malformed caller input, such as a position record with too few components.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDegenerateRange reports an input range whose minimum equals its maximum.
	ErrDegenerateRange = errors.New("degenerate range")
)
