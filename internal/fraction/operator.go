package fraction

import "fmt"

// Fraction is a numerator/denominator pair. It is used both for the
// computational form of an operand and for the raw, unreduced result of an
// operation.
type Fraction struct {
	Num int64 `json:"numerator" yaml:"numerator"`
	Den int64 `json:"denominator" yaml:"denominator"`
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Operator is one of the four supported binary operations.
type Operator string

const (
	OperatorMultiply Operator = "*"
	OperatorDivide   Operator = "/"
	OperatorAdd      Operator = "+"
	OperatorSubtract Operator = "-"
)

// ParseOperator validates an operator token.
func ParseOperator(token string) (Operator, error) {
	switch op := Operator(token); op {
	case OperatorMultiply, OperatorDivide, OperatorAdd, OperatorSubtract:
		return op, nil
	default:
		return "", &InvalidOperatorError{Operator: token}
	}
}

// Name returns a readable name for logs.
func (op Operator) Name() string {
	switch op {
	case OperatorMultiply:
		return "multiply"
	case OperatorDivide:
		return "divide"
	case OperatorAdd:
		return "add"
	case OperatorSubtract:
		return "subtract"
	default:
		return "unknown"
	}
}

// Evaluate applies op to two computational fractions. The result is neither
// reduced nor split into whole and fractional parts. Only subtraction can
// produce a negative numerator; the denominator is always positive.
func Evaluate(a Fraction, op Operator, b Fraction) (Fraction, error) {
	switch op {
	case OperatorMultiply:
		return Fraction{Num: a.Num * b.Num, Den: a.Den * b.Den}, nil
	case OperatorDivide:
		// b.Den is never zero after parsing, so b is zero exactly when b.Num is.
		if b.Num == 0 {
			return Fraction{}, ErrDivideByZero
		}
		return Fraction{Num: a.Num * b.Den, Den: a.Den * b.Num}, nil
	case OperatorAdd:
		return Fraction{Num: a.Num*b.Den + a.Den*b.Num, Den: a.Den * b.Den}, nil
	case OperatorSubtract:
		return Fraction{Num: a.Num*b.Den - a.Den*b.Num, Den: a.Den * b.Den}, nil
	default:
		return Fraction{}, &InvalidOperatorError{Operator: string(op)}
	}
}
