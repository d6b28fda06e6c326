package main

import (
	"fmt"

	"github.com/rpgo/calculator/internal/domain"
	"github.com/rpgo/calculator/internal/keypad"
	"github.com/rpgo/calculator/internal/logging"
	"github.com/rpgo/calculator/internal/output"
	"github.com/rpgo/calculator/pkg/calc"
	"github.com/spf13/cobra"
)

func binaryCmd(a *app, op calc.Operation) *cobra.Command {
	return &cobra.Command{
		Use:   op.String() + " <a> <b>",
		Short: fmt.Sprintf("Print the result of %s on two numbers", op),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, &output.Report{Result: a.engine.Apply(args[0], op, args[1])})
		},
	}
}

func unaryCmd(a *app, op calc.UnaryOperation) *cobra.Command {
	return &cobra.Command{
		Use:   op.String() + " <a>",
		Short: fmt.Sprintf("Print the result of %s on a number", op),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, &output.Report{Result: a.engine.ApplyUnary(args[0], op)})
		},
	}
}

func cumulateCmd(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "cumulate <destination> <source>",
		Short: "Enter a digit into a display string",
		Example: `  calc cumulate "" 3 --mode START
  calc cumulate 3.0 5 --mode CUMUL_DECIMAL`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := calc.ParseMode(mode)
			if err != nil {
				return err
			}
			return a.print(cmd, &output.Report{Result: a.engine.Cumulate(args[0], args[1], m)})
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", calc.Cumul.String(), "START, START_DECIMAL, CUMUL or CUMUL_DECIMAL")
	return cmd
}

func buttonsCmd(a *app) *cobra.Command {
	var value, shortcut string
	cmd := &cobra.Command{
		Use:   "buttons",
		Short: "List the calculator buttons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				b  domain.Button
				ok bool
			)
			switch {
			case value != "":
				b, ok = domain.ByValue(value)
			case shortcut != "":
				b, ok = domain.ByShortcut(shortcut)
			default:
				return a.print(cmd, &output.Report{Buttons: domain.Buttons()})
			}
			if !ok {
				return fmt.Errorf("no button matches %q", value+shortcut)
			}
			return a.print(cmd, &output.Report{Buttons: []domain.Button{b}})
		},
	}
	cmd.Flags().StringVar(&value, "value", "", "show the button with this value")
	cmd.Flags().StringVar(&shortcut, "shortcut", "", "show the button bound to this keyboard shortcut")
	cmd.MarkFlagsMutuallyExclusive("value", "shortcut")
	return cmd
}

func pressCmd(a *app) *cobra.Command {
	var steps bool
	cmd := &cobra.Command{
		Use:   "press <keys>...",
		Short: "Replay key presses on a calculator and print the display",
		Example: `  calc press "12.5*2="
  calc press 5 0 % Enter
  calc press 7 negate --steps`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k := keypad.New(a.engine, logging.Adapter{Logger: a.logger})
			if err := k.PressKeys(args...); err != nil {
				return err
			}
			r := &output.Report{Result: k.Display()}
			if steps {
				r.Steps = k.Steps()
			}
			return a.print(cmd, r)
		},
	}
	cmd.Flags().BoolVar(&steps, "steps", false, "include the display after every press")
	return cmd
}
