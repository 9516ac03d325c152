package fraction

import (
	"strconv"
	"strings"
)

const (
	wholeSeparator    = "_"
	fractionSeparator = "/"
)

// Operand is one number as written by the user: a whole part, a fractional
// part, or both.
type Operand struct {
	Raw         string `json:"raw" yaml:"raw"`
	Whole       int64  `json:"whole" yaml:"whole"`
	HasWhole    bool   `json:"has_whole" yaml:"has_whole"`
	Numerator   int64  `json:"numerator" yaml:"numerator"`
	Denominator int64  `json:"denominator" yaml:"denominator"`
	HasFraction bool   `json:"has_fraction" yaml:"has_fraction"`
}

// ParseOperand parses a token in one of the forms W, N/D or W_N/D where
// W, N and D are unsigned decimal integers and D is not zero.
func ParseOperand(input string) (Operand, error) {
	operand := Operand{Raw: input}

	switch {
	case strings.Contains(input, wholeSeparator):
		wholePart, fractionalPart, _ := strings.Cut(input, wholeSeparator)
		if strings.Contains(fractionalPart, wholeSeparator) {
			return Operand{}, &MalformedOperandError{Operand: input}
		}

		whole, err := parseUnsigned(wholePart)
		if err != nil {
			return Operand{}, err
		}
		numerator, denominator, err := parseFractional(input, fractionalPart)
		if err != nil {
			return Operand{}, err
		}

		operand.Whole = whole
		operand.HasWhole = true
		operand.Numerator = numerator
		operand.Denominator = denominator
		operand.HasFraction = true
	case strings.Contains(input, fractionSeparator):
		numerator, denominator, err := parseFractional(input, input)
		if err != nil {
			return Operand{}, err
		}

		operand.Numerator = numerator
		operand.Denominator = denominator
		operand.HasFraction = true
	default:
		whole, err := parseUnsigned(input)
		if err != nil {
			return Operand{}, err
		}

		operand.Whole = whole
		operand.HasWhole = true
	}

	return operand, nil
}

// parseFractional splits "N/D" and validates both sides. input is the whole
// operand, used for error reporting.
func parseFractional(input, fractional string) (int64, int64, error) {
	if strings.Count(fractional, fractionSeparator) != 1 {
		return 0, 0, &MalformedOperandError{Operand: input}
	}

	numeratorPart, denominatorPart, _ := strings.Cut(fractional, fractionSeparator)

	numerator, err := parseUnsigned(numeratorPart)
	if err != nil {
		return 0, 0, err
	}
	denominator, err := parseUnsigned(denominatorPart)
	if err != nil {
		return 0, 0, err
	}
	if denominator == 0 {
		return 0, 0, ErrZeroDenominator
	}

	return numerator, denominator, nil
}

// parseUnsigned accepts only decimal digits; signs are not part of the
// operand grammar.
func parseUnsigned(part string) (int64, error) {
	if part == "" {
		return 0, &NotANumberError{Token: part}
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, &NotANumberError{Token: part}
		}
	}

	x, err := strconv.ParseInt(part, 10, 64)
	if err != nil {
		return 0, &NotANumberError{Token: part}
	}

	return x, nil
}

// Normalize returns the operand as a single fraction whose value equals the
// operand's value. A zero whole part next to a fraction contributes nothing,
// so "0_3/4" normalizes to 3/4.
func (o Operand) Normalize() Fraction {
	switch {
	case !o.HasWhole:
		return Fraction{Num: o.Numerator, Den: o.Denominator}
	case !o.HasFraction:
		return Fraction{Num: o.Whole, Den: 1}
	case o.Whole == 0:
		return Fraction{Num: o.Numerator, Den: o.Denominator}
	default:
		return Fraction{Num: o.Whole*o.Denominator + o.Numerator, Den: o.Denominator}
	}
}
