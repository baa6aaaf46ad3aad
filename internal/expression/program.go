package expression

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/interpreter"
)

// Program is a compiled expression, ready for repeated execution.
type Program struct {
	program cel.Program
	source  string
	varName string
}

// Source returns the expression text the [Program] was compiled from.
func (p *Program) Source() string {
	return p.source
}

// VarName returns the variable name the [Program] expects to be bound.
func (p *Program) VarName() string {
	return p.varName
}

// Context is the evaluation context of a [Program]. It holds at most one
// variable binding, which is replaced as a whole by every [Context.Bind].
type Context struct {
	program    *Program
	activation interpreter.Activation
}

// NewContext returns a pointer to a new [Context] for the given [Program].
func NewContext(program *Program) *Context {
	return &Context{
		program: program,
	}
}

// Bind installs value as the program's variable, overwriting any previous
// binding. A failed binding leaves the context without any binding.
func (c *Context) Bind(value map[string]any) error {
	c.activation = nil

	if value == nil {
		return fmt.Errorf("(expr-bind) %w: nil value for %q", ErrBinding, c.program.varName)
	}

	activation, err := interpreter.NewActivation(map[string]any{
		c.program.varName: value,
	})
	if err != nil {
		return fmt.Errorf("(expr-bind) %w: %w", ErrBinding, err)
	}

	c.activation = activation

	return nil
}

// Execute runs the program against the current binding and returns the
// resulting value, whatever its type.
func (c *Context) Execute() (ref.Val, error) { //nolint:ireturn
	if c.activation == nil {
		return nil, fmt.Errorf("(expr-exec) %w: no value bound to %q", ErrExecution, c.program.varName)
	}

	out, _, err := c.program.program.Eval(c.activation)
	if err != nil {
		return nil, fmt.Errorf("(expr-exec) %w: %w", ErrExecution, err)
	}

	return out, nil
}

// Evaluate binds value, executes the program and returns its boolean result.
// Any non-boolean result is an [ErrResultType] and never coerced.
func (c *Context) Evaluate(value map[string]any) (bool, error) {
	if err := c.Bind(value); err != nil {
		return false, err
	}

	out, err := c.Execute()
	if err != nil {
		return false, err
	}

	return asBool(out)
}

func asBool(out ref.Val) (bool, error) {
	switch v := out.(type) {
	case types.Bool:
		return bool(v), nil

	default:
		return false, fmt.Errorf("(expr-result) %w: got %s", ErrResultType, out.Type().TypeName())
	}
}
