// Package expression compiles and evaluates boolean CEL expressions against
// structured values. A single variable is exposed to the expression, holding
// the string-keyed map of the current filesystem entry, and the function table
// is extended with the domain functions of this package (such as parseSize).
package expression

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// DefaultVariable is the variable name used when none was configured.
const DefaultVariable = "item"

//nolint:gochecknoglobals
var reservedWords = map[string]struct{}{
	"as": {}, "break": {}, "const": {}, "continue": {}, "else": {},
	"false": {}, "for": {}, "function": {}, "if": {}, "import": {},
	"in": {}, "let": {}, "loop": {}, "package": {}, "namespace": {},
	"null": {}, "return": {}, "true": {}, "var": {}, "void": {},
	"while": {},
}

// Environment holds the declarations a program is compiled against.
type Environment struct {
	env     *cel.Env
	varName string
}

// NewEnvironment returns a pointer to a new [Environment], declaring varName
// as a map of strings to dynamically typed values and registering all domain
// functions.
func NewEnvironment(varName string) (*Environment, error) {
	if !isIdentifier(varName) {
		return nil, fmt.Errorf("(expr-env) %w: %q", ErrInvalidVariable, varName)
	}

	env, err := cel.NewEnv(
		cel.Variable(varName, cel.MapType(cel.StringType, cel.DynType)),
		parseSizeFunction(),
	)
	if err != nil {
		return nil, fmt.Errorf("(expr-env) failed to create environment: %w", err)
	}

	return &Environment{
		env:     env,
		varName: varName,
	}, nil
}

// Compile parses, checks and plans the expression into a [Program]. It is
// meant to be called once per run, before any value is evaluated.
func (e *Environment) Compile(expr string) (*Program, error) {
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("(expr-compile) %w: %w", ErrCompile, issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("(expr-compile) %w: %w", ErrCompile, err)
	}

	return &Program{
		program: prg,
		source:  expr,
		varName: e.varName,
	}, nil
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}

	if _, reserved := reservedWords[name]; reserved {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
