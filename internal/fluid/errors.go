package fluid

import "errors"

// Domain errors for grid operations.
var (
	// ErrOutOfRange indicates a coordinate outside the grid passed to a
	// direct-access operation (At, Inject). Stencil math wraps instead.
	ErrOutOfRange = errors.New("fluid: coordinate out of range")
)
