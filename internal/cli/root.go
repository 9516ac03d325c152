package cli

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lacquerai/frac/internal/execcontext"
	"github.com/lacquerai/frac/internal/style"
)

var (
	// Global flags
	cfgFile      string
	logLevel     string
	outputFormat string
	quiet        bool
	verbose      bool

	// calculationErr is the failure of the calculation run by rootCmd. Its
	// diagnostic is already on stdout, so it is kept away from fang and
	// returned by Execute only to set the exit status.
	calculationErr error
)

// rootCmd represents the base command. Called with three arguments it
// evaluates them as a fraction expression.
var rootCmd = &cobra.Command{
	Use:   "frac <operand1> <operator> <operand2>",
	Short: "frac - exact arithmetic on mixed fractions",
	Long: `frac multiplies, divides, adds or subtracts two fractions and prints the
result reduced to lowest terms in mixed-fraction notation.

Each operand is written as a whole number (3), a fraction (3/4) or a mixed
number with an underscore between the whole part and the fraction (1_3/4).
The operator is one of * / + - and must be quoted when it is *.`,
	Example: `
  frac 1_1/2 + 3_3/4          # 5_1/4
  frac 1/2 "*" 2/3            # 1/3
  frac 1/2 - 3/4              # -1/4
  frac 3 / 4 --output json    # structured result`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		runCtx := execcontext.RunContext{
			Context: log.Logger.WithContext(ctx),
			StdOut:  cmd.OutOrStdout(),
			StdErr:  cmd.ErrOrStderr(),
		}

		calculationErr = calculate(runCtx, args)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	calculationErr = nil

	err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(Version),
		fang.WithCommit(Commit),
		fang.WithColorSchemeFunc(func(lightDark lipgloss.LightDarkFunc) fang.ColorScheme {
			return fang.ColorScheme{
				Base:           style.PrimaryTextColor,
				Title:          style.AccentColor,
				Description:    style.PrimaryTextColor,
				Codeblock:      style.CodeColor,
				Program:        style.AccentColor,
				DimmedArgument: style.MutedColor,
				Comment:        style.MutedColor,
				Flag:           style.InfoColor,
				FlagDefault:    style.MutedColor,
				Command:        style.SuccessColor,
				QuotedString:   style.WarningColor,
				Argument:       style.PrimaryTextColor,
				Help:           style.InfoColor,
				Dash:           style.MutedColor,
				ErrorHeader:    [2]color.Color{style.ErrorColor, style.ErrorBgColor},
				ErrorDetails:   style.ErrorColor,
			}
		}))
	if err != nil {
		return err
	}

	return calculationErr
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.frac/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "disabled", "log level (debug, info, warn, error) (default: disabled)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the unreduced result on stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.frac")
		}
		viper.AddConfigPath(".")
		viper.AddConfigPath(".frac")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("FRAC")
	viper.AutomaticEnv()

	// stdout carries only the result, so config notices go to stderr.
	if err := viper.ReadInConfig(); err == nil {
		if !viper.GetBool("quiet") {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	}
}

// initLogging configures the global logger
func initLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(parseLogLevel(viper.GetString("log-level")))

	if !viper.GetBool("quiet") && viper.GetString("output") == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = log.Output(os.Stderr)
	}
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}
