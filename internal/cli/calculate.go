package cli

import (
	"strings"

	"github.com/lacquerai/frac/internal/execcontext"
	"github.com/lacquerai/frac/internal/fraction"
	"github.com/lacquerai/frac/internal/style"
	"github.com/spf13/viper"
)

// CalculationOutput is the structured form of a calculation printed with
// --output json or --output yaml.
type CalculationOutput struct {
	// Expression is the input arguments joined by spaces.
	Expression string `json:"expression" yaml:"expression"`
	// Result is the reduced result in mixed-fraction notation.
	Result string `json:"result,omitempty" yaml:"result,omitempty"`
	// Error is the diagnostic of a failed calculation.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	// Calculation holds the parsed operands, the unreduced result and the
	// result parts.
	Calculation *fraction.Calculation `json:"calculation,omitempty" yaml:"calculation,omitempty"`
}

func newCalculationOutput(args []string, calc fraction.Calculation, err error) CalculationOutput {
	output := CalculationOutput{Expression: strings.Join(args, " ")}
	if err != nil {
		output.Error = err.Error()
		return output
	}

	output.Result = calc.Result.String()
	output.Calculation = &calc
	return output
}

// calculate evaluates args and writes either the result or a single
// diagnostic line to stdout. The returned error only decides the exit status;
// callers must not print it again.
func calculate(runCtx execcontext.RunContext, args []string) error {
	calc, err := fraction.Calculate(runCtx.Context, args)

	switch viper.GetString("output") {
	case "json":
		style.PrintJSON(runCtx.StdOut, newCalculationOutput(args, calc, err))
	case "yaml":
		style.PrintYAML(runCtx.StdOut, newCalculationOutput(args, calc, err))
	default:
		if err != nil {
			runCtx.Println(err.Error())
			break
		}
		if viper.GetBool("verbose") && !viper.GetBool("quiet") {
			runCtx.Errorf("%s\n", style.Step("raw", calc.Raw))
		}
		runCtx.Println(calc.Result.String())
	}

	if err != nil {
		runCtx.Logger().Debug().
			Err(err).
			Strs("args", args).
			Msg("Calculation failed")
		return err
	}

	return nil
}
