package expression

import (
	"github.com/desertwitch/direntfilter/internal/sizes"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// ParseSizeFunction is the name under which [sizes.Parse] is exposed to
// expressions, e.g. item.len > parseSize('5MiB').
const ParseSizeFunction = "parseSize"

func parseSizeFunction() cel.EnvOption {
	return cel.Function(ParseSizeFunction,
		cel.Overload("parseSize_string",
			[]*cel.Type{cel.StringType},
			cel.IntType,
			cel.UnaryBinding(parseSize),
		),
	)
}

// parseSize returns an error value instead of failing, so that a malformed
// literal surfaces as an execution error of the line being evaluated.
func parseSize(arg ref.Val) ref.Val {
	text, ok := arg.(types.String)
	if !ok {
		return types.MaybeNoSuchOverloadErr(arg)
	}

	size, err := sizes.Parse(string(text))
	if err != nil {
		return types.NewErr("%s: %v", ParseSizeFunction, err)
	}

	return types.Int(size)
}
