// Package fraction implements exact arithmetic on mixed fractions written as
// W, N/D or W_N/D.
//
// A calculation runs as a fixed pipeline: Parse the three input tokens,
// Normalize each operand, Evaluate the operator, Reduce the raw result and
// format it with Result.String. Each stage is a pure function and returns
// the first error it meets.
package fraction

import (
	"context"

	"github.com/rs/zerolog"
)

// Expression is a parsed "operand operator operand" input.
type Expression struct {
	Left     Operand  `json:"left" yaml:"left"`
	Operator Operator `json:"operator" yaml:"operator"`
	Right    Operand  `json:"right" yaml:"right"`
}

// Parse validates the three input tokens. Both operands are parsed before the
// operator is checked, so a malformed operand is reported ahead of a bad
// operator.
func Parse(args []string) (Expression, error) {
	if len(args) != 3 {
		return Expression{}, &ArgumentCountError{Count: len(args)}
	}

	left, err := ParseOperand(args[0])
	if err != nil {
		return Expression{}, err
	}
	right, err := ParseOperand(args[2])
	if err != nil {
		return Expression{}, err
	}

	op, err := ParseOperator(args[1])
	if err != nil {
		return Expression{}, err
	}

	return Expression{Left: left, Operator: op, Right: right}, nil
}

// Calculation holds every intermediate value of one run of the pipeline.
type Calculation struct {
	Expression Expression `json:"expression" yaml:"expression"`
	Raw        Fraction   `json:"raw" yaml:"raw"`
	Result     Result     `json:"result" yaml:"result"`
}

// Calculate parses args and evaluates them. The logger stored in ctx, if
// any, receives one debug event per stage.
func Calculate(ctx context.Context, args []string) (Calculation, error) {
	logger := zerolog.Ctx(ctx)

	expr, err := Parse(args)
	if err != nil {
		return Calculation{}, err
	}

	left := expr.Left.Normalize()
	right := expr.Right.Normalize()
	logger.Debug().
		Str("left", expr.Left.Raw).
		Stringer("left_fraction", left).
		Str("right", expr.Right.Raw).
		Stringer("right_fraction", right).
		Msg("Normalized operands")

	raw, err := Evaluate(left, expr.Operator, right)
	if err != nil {
		return Calculation{}, err
	}
	logger.Debug().
		Str("operation", expr.Operator.Name()).
		Stringer("raw", raw).
		Msg("Evaluated operation")

	result := Reduce(raw)
	logger.Debug().
		Stringer("result", result).
		Msg("Reduced result")

	return Calculation{Expression: expr, Raw: raw, Result: result}, nil
}
