package filter

import "errors"

var (
	// ErrRead occurs when reading from the input stream fails.
	ErrRead = errors.New("failed to read input")

	// ErrWrite occurs when writing an accepted entry to the output fails.
	ErrWrite = errors.New("failed to write output")
)
