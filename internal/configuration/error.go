package configuration

import "errors"

var (
	// ErrMissingExpression occurs when no expression was given by any of the
	// configuration sources.
	ErrMissingExpression = errors.New("no expression was configured")

	// ErrInvalidValue occurs when a configuration file holds a value that
	// cannot be converted into the type of its setting.
	ErrInvalidValue = errors.New("invalid configuration value")
)
