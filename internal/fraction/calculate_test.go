package fraction

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_Scenarios(t *testing.T) {
	testCases := []struct {
		left     string
		op       string
		right    string
		expected string
	}{
		{"1_1/2", "+", "3_3/4", "5_1/4"},
		{"1/2", "*", "2/3", "1/3"},
		{"3", "/", "4", "3/4"},
		{"5", "-", "5", "0"},
		{"1/2", "-", "3/4", "-1/4"},
		{"1_1/2", "*", "3_3/4", "5_5/8"},
		{"1_1/2", "-", "3_3/4", "-2_1/4"},
		{"0_3/4", "+", "1/4", "1"},
		{"0", "/", "7/8", "0"},
		{"2/4", "+", "0", "1/2"},
		{"8", "/", "1/2", "16"},
		{"1", "-", "10", "-9"},
	}

	for _, tc := range testCases {
		t.Run(tc.left+" "+tc.op+" "+tc.right, func(t *testing.T) {
			calc, err := Calculate(context.Background(), []string{tc.left, tc.op, tc.right})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, calc.Result.String())
		})
	}
}

func TestCalculate_RawResult(t *testing.T) {
	calc, err := Calculate(context.Background(), []string{"1/2", "-", "3/4"})
	require.NoError(t, err)

	assert.Equal(t, Fraction{Num: -2, Den: 8}, calc.Raw)
	assert.Equal(t, Result{Numerator: -1, Denominator: 4, HasFraction: true}, calc.Result)
	assert.Equal(t, OperatorSubtract, calc.Expression.Operator)
	assert.Equal(t, "1/2", calc.Expression.Left.Raw)
	assert.Equal(t, "3/4", calc.Expression.Right.Raw)
}

func TestCalculate_Errors(t *testing.T) {
	t.Run("Argument count", func(t *testing.T) {
		for _, args := range [][]string{nil, {"1"}, {"1", "+"}, {"1", "+", "2", "3"}} {
			_, err := Calculate(context.Background(), args)

			var countErr *ArgumentCountError
			require.ErrorAs(t, err, &countErr)
			assert.Equal(t, len(args), countErr.Count)
		}
	})

	t.Run("Zero denominator", func(t *testing.T) {
		_, err := Calculate(context.Background(), []string{"1/0", "+", "1"})
		assert.ErrorIs(t, err, ErrZeroDenominator)
	})

	t.Run("Not a number", func(t *testing.T) {
		_, err := Calculate(context.Background(), []string{"1", "+", "two"})

		var nanErr *NotANumberError
		require.ErrorAs(t, err, &nanErr)
		assert.Equal(t, "two", nanErr.Token)
	})

	t.Run("Invalid operator", func(t *testing.T) {
		_, err := Calculate(context.Background(), []string{"1", "x", "2"})

		var opErr *InvalidOperatorError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "x", opErr.Operator)
	})

	t.Run("Operands are checked before the operator", func(t *testing.T) {
		_, err := Calculate(context.Background(), []string{"1", "x", "1/0"})
		assert.ErrorIs(t, err, ErrZeroDenominator)
	})

	t.Run("Left operand is checked first", func(t *testing.T) {
		_, err := Calculate(context.Background(), []string{"a", "+", "b"})

		var nanErr *NotANumberError
		require.ErrorAs(t, err, &nanErr)
		assert.Equal(t, "a", nanErr.Token)
	})

	t.Run("Divide by zero", func(t *testing.T) {
		_, err := Calculate(context.Background(), []string{"1/2", "/", "0_0/3"})
		assert.ErrorIs(t, err, ErrDivideByZero)
	})
}

func TestCalculate_LogsStages(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	_, err := Calculate(ctx, []string{"1_1/2", "+", "3_3/4"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"Normalized operands"`)
	assert.Contains(t, out, `"left_fraction":"3/2"`)
	assert.Contains(t, out, `"operation":"add"`)
	assert.Contains(t, out, `"raw":"42/8"`)
	assert.Contains(t, out, `"result":"5_1/4"`)
}
