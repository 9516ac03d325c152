package fraction

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominator is returned when an operand has a denominator of zero.
	ErrZeroDenominator = errors.New("Denominator of fraction is zero")

	// ErrDivideByZero is returned when dividing by an operand whose value is zero.
	ErrDivideByZero = errors.New("Operation is division and second operand is zero")
)

// ArgumentCountError is returned when the input is not exactly
// operand, operator, operand.
type ArgumentCountError struct {
	Count int `json:"count"`
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("Improper number of arguments %d, expecting 'operand1 operator operand2'", e.Count)
}

// NotANumberError reports an operand part that is not an unsigned integer.
type NotANumberError struct {
	Token string `json:"token"`
}

func (e *NotANumberError) Error() string {
	return fmt.Sprintf("Input part '%s' is not a number", e.Token)
}

// MalformedOperandError reports an operand with a separator layout that is
// none of W, N/D or W_N/D.
type MalformedOperandError struct {
	Operand string `json:"operand"`
}

func (e *MalformedOperandError) Error() string {
	return fmt.Sprintf("Operand '%s' is not in whole, numerator/denominator or whole_numerator/denominator form", e.Operand)
}

// InvalidOperatorError reports an operator outside * / + -.
type InvalidOperatorError struct {
	Operator string `json:"operator"`
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("Invalid operator '%s', expecting one of * / + -", e.Operator)
}
