package sizes

import "errors"

var (
	// ErrMalformed occurs when a size literal has no valid decimal magnitude
	// or carries a unit suffix that is not contained in [Units].
	ErrMalformed = errors.New("malformed size literal")

	// ErrOverflow occurs when a size literal is well-formed, but the resulting
	// byte count does not fit into a signed 64-bit integer.
	ErrOverflow = errors.New("size literal overflows int64")
)
