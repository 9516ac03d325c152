package fraction

import (
	"strconv"
	"strings"
)

// Result is a reduced mixed fraction.
//
// At least one of HasWhole and HasFraction is set. When HasFraction is set
// the fraction is in lowest terms with a positive denominator. The sign of a
// negative result lives on Whole when it is present and on Numerator
// otherwise.
type Result struct {
	Whole       int64 `json:"whole" yaml:"whole"`
	HasWhole    bool  `json:"has_whole" yaml:"has_whole"`
	Numerator   int64 `json:"numerator" yaml:"numerator"`
	Denominator int64 `json:"denominator" yaml:"denominator"`
	HasFraction bool  `json:"has_fraction" yaml:"has_fraction"`
}

// Reduce splits a raw fraction into its whole part and a proper fraction in
// lowest terms. raw.Den must be positive.
func Reduce(raw Fraction) Result {
	return reduceFractionalPart(splitWholeAndFractionalParts(raw))
}

func splitWholeAndFractionalParts(raw Fraction) Result {
	if raw.Num == 0 {
		return Result{Whole: 0, HasWhole: true}
	}

	// Go division truncates toward zero, so whole and remainder both take
	// the numerator's sign.
	whole := raw.Num / raw.Den
	if whole == 0 {
		return Result{
			Numerator:   raw.Num,
			Denominator: raw.Den,
			HasFraction: true,
		}
	}

	result := Result{Whole: whole, HasWhole: true}
	if remainder := raw.Num % raw.Den; remainder != 0 {
		result.Numerator = abs(remainder)
		result.Denominator = raw.Den
		result.HasFraction = true
	}

	return result
}

func reduceFractionalPart(r Result) Result {
	if !r.HasFraction {
		return r
	}

	sign := int64(1)
	numerator := r.Numerator
	if numerator < 0 {
		sign = -1
		numerator = -numerator
	}

	factor := gcd(numerator, r.Denominator)
	r.Numerator = sign * numerator / factor
	r.Denominator = r.Denominator / factor

	return r
}

// gcd is Euclid's algorithm; gcd(a, 0) == a.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Fraction returns the result as a single, possibly improper, fraction.
func (r Result) Fraction() Fraction {
	switch {
	case !r.HasFraction:
		return Fraction{Num: r.Whole, Den: 1}
	case !r.HasWhole:
		return Fraction{Num: r.Numerator, Den: r.Denominator}
	case r.Whole < 0:
		return Fraction{Num: r.Whole*r.Denominator - r.Numerator, Den: r.Denominator}
	default:
		return Fraction{Num: r.Whole*r.Denominator + r.Numerator, Den: r.Denominator}
	}
}

// String renders the result in mixed-fraction notation: "W", "N/D" or
// "W_N/D".
func (r Result) String() string {
	var sb strings.Builder

	if r.HasWhole {
		sb.WriteString(strconv.FormatInt(r.Whole, 10))
		if r.HasFraction {
			sb.WriteString(wholeSeparator)
		}
	}
	if r.HasFraction {
		sb.WriteString(strconv.FormatInt(r.Numerator, 10))
		sb.WriteString(fractionSeparator)
		sb.WriteString(strconv.FormatInt(r.Denominator, 10))
	}

	return sb.String()
}
