package expression

import "errors"

var (
	// ErrInvalidVariable occurs when the name the structured value should be
	// exposed under is not a valid identifier in the expression language.
	ErrInvalidVariable = errors.New("invalid variable name")

	// ErrCompile occurs when the expression text is not a valid program.
	ErrCompile = errors.New("failed to compile expression")

	// ErrBinding occurs when a structured value cannot be installed into the
	// evaluation context.
	ErrBinding = errors.New("failed to bind variable")

	// ErrExecution occurs when executing the program fails, including any
	// failure of a registered function (such as a malformed size literal).
	ErrExecution = errors.New("failed to execute expression")

	// ErrResultType occurs when the expression evaluated to anything other
	// than a boolean value.
	ErrResultType = errors.New("expression did not return a boolean result")
)
