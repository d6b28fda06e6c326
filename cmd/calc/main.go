package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rpgo/calculator/internal/config"
	"github.com/rpgo/calculator/internal/logging"
	"github.com/rpgo/calculator/internal/output"
	"github.com/rpgo/calculator/pkg/calc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app carries what the subcommands share once the configuration is loaded.
type app struct {
	v      *viper.Viper
	config *config.Configuration
	engine *calc.Engine
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Precision-safe decimal calculator",
		Long: `calc performs decimal arithmetic without floating point drift.

Invalid input and division by zero print "Not a number" rather than failing.
Use "--" before negative operands, e.g. calc negate -- -5.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (YAML)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json)")
	flags.StringP("format", "f", "", "output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	flags.Int32("decimal-places", 0, "fractional digits kept after each operation")
	flags.Int32("exponential-at", 0, "exponent from which results use exponential notation")

	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("output.format", flags.Lookup("format"))
	_ = a.v.BindPFlag("precision.decimal_places", flags.Lookup("decimal-places"))
	_ = a.v.BindPFlag("precision.exponential_at", flags.Lookup("exponential-at"))

	a.v.SetEnvPrefix("CALC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	for _, op := range []calc.Operation{calc.OpAdd, calc.OpSubtract, calc.OpMultiply, calc.OpDivide} {
		rootCmd.AddCommand(binaryCmd(a, op))
	}
	rootCmd.AddCommand(unaryCmd(a, calc.OpNegate))
	rootCmd.AddCommand(unaryCmd(a, calc.OpPercent))
	rootCmd.AddCommand(cumulateCmd(a))
	rootCmd.AddCommand(buttonsCmd(a))
	rootCmd.AddCommand(pressCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load reads the config file, applies flag and CALC_* environment
// overrides, then builds the logger and engine.
func (a *app) load(logOut io.Writer) error {
	parser := config.NewInputParser()

	cfg := parser.CreateExampleConfiguration()
	if file := a.v.GetString("config"); file != "" {
		loaded, err := parser.LoadFromFile(file)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if a.v.IsSet("logging.level") {
		cfg.Logging.Level = a.v.GetString("logging.level")
	}
	if a.v.IsSet("logging.format") {
		cfg.Logging.Format = a.v.GetString("logging.format")
	}
	if a.v.IsSet("output.format") {
		cfg.Output.Format = a.v.GetString("output.format")
	}
	if a.v.IsSet("precision.decimal_places") {
		cfg.Precision.DecimalPlaces = a.v.GetInt32("precision.decimal_places")
	}
	if a.v.IsSet("precision.exponential_at") {
		cfg.Precision.ExponentialAt = a.v.GetInt32("precision.exponential_at")
	}
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if output.GetFormatterByName(cfg.Output.Format) == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, cfg.Output.Format)
	}

	logger, err := logging.New(logOut, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	engine, err := calc.New(cfg.Precision, calc.WithLogger(logging.Adapter{Logger: logger}))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	a.config = cfg
	a.logger = logger
	a.engine = engine
	logger.Debug("configuration loaded",
		"decimal_places", cfg.Precision.DecimalPlaces,
		"exponential_at", cfg.Precision.ExponentialAt,
		"format", cfg.Output.Format)
	return nil
}

// print writes a report in the configured output format.
func (a *app) print(cmd *cobra.Command, r *output.Report) error {
	return output.GenerateReport(cmd.OutOrStdout(), r, a.config.Output.Format)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calc %s\n", version)
		},
	}
}
