package fraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperand(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Operand
	}{
		{
			name:     "Whole only",
			input:    "7",
			expected: Operand{Raw: "7", Whole: 7, HasWhole: true},
		},
		{
			name:     "Fraction only",
			input:    "3/4",
			expected: Operand{Raw: "3/4", Numerator: 3, Denominator: 4, HasFraction: true},
		},
		{
			name:  "Mixed",
			input: "1_1/2",
			expected: Operand{
				Raw: "1_1/2", Whole: 1, HasWhole: true,
				Numerator: 1, Denominator: 2, HasFraction: true,
			},
		},
		{
			name:  "Mixed with zero whole",
			input: "0_3/4",
			expected: Operand{
				Raw: "0_3/4", Whole: 0, HasWhole: true,
				Numerator: 3, Denominator: 4, HasFraction: true,
			},
		},
		{
			name:     "Improper fraction",
			input:    "9/4",
			expected: Operand{Raw: "9/4", Numerator: 9, Denominator: 4, HasFraction: true},
		},
		{
			name:     "Leading zeros",
			input:    "007",
			expected: Operand{Raw: "007", Whole: 7, HasWhole: true},
		},
		{
			name:     "Zero",
			input:    "0",
			expected: Operand{Raw: "0", Whole: 0, HasWhole: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			operand, err := ParseOperand(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, operand)
			assert.True(t, operand.HasWhole || operand.HasFraction)
		})
	}
}

func TestParseOperand_NotANumber(t *testing.T) {
	testCases := []struct {
		input string
		token string
	}{
		{input: "abc", token: "abc"},
		{input: "-3", token: "-3"},
		{input: "+3", token: "+3"},
		{input: "1.5", token: "1.5"},
		{input: "x/2", token: "x"},
		{input: "1/y", token: "y"},
		{input: "z_1/2", token: "z"},
		{input: "1_a/2", token: "a"},
		{input: "1_1/b", token: "b"},
		{input: "/2", token: ""},
		{input: "1/", token: ""},
		{input: "", token: ""},
		{input: "99999999999999999999", token: "99999999999999999999"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseOperand(tc.input)
			require.Error(t, err)

			var nanErr *NotANumberError
			require.ErrorAs(t, err, &nanErr)
			assert.Equal(t, tc.token, nanErr.Token)
			assert.Equal(t, "Input part '"+tc.token+"' is not a number", err.Error())
		})
	}
}

func TestParseOperand_ZeroDenominator(t *testing.T) {
	for _, input := range []string{"1/0", "1_1/0", "0/0", "3_0/00"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseOperand(input)
			assert.ErrorIs(t, err, ErrZeroDenominator)
			assert.Equal(t, "Denominator of fraction is zero", err.Error())
		})
	}
}

func TestParseOperand_Malformed(t *testing.T) {
	for _, input := range []string{"1_2", "1_2/3/4", "1/2/3", "1_2_3/4"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseOperand(input)

			var malformed *MalformedOperandError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, input, malformed.Operand)
		})
	}
}

func TestParseOperand_NumeratorCheckedBeforeDenominator(t *testing.T) {
	_, err := ParseOperand("a/0")

	var nanErr *NotANumberError
	require.ErrorAs(t, err, &nanErr)
	assert.Equal(t, "a", nanErr.Token)
}

func TestOperand_Normalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected Fraction
	}{
		{input: "1_1/2", expected: Fraction{Num: 3, Den: 2}},
		{input: "7", expected: Fraction{Num: 7, Den: 1}},
		{input: "3/4", expected: Fraction{Num: 3, Den: 4}},
		{input: "0_3/4", expected: Fraction{Num: 3, Den: 4}},
		{input: "3_3/4", expected: Fraction{Num: 15, Den: 4}},
		{input: "2/4", expected: Fraction{Num: 2, Den: 4}},
		{input: "0", expected: Fraction{Num: 0, Den: 1}},
		{input: "2_0/5", expected: Fraction{Num: 10, Den: 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			operand, err := ParseOperand(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, operand.Normalize())
		})
	}
}
