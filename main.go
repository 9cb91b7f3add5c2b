package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"energy_balance_calc/energy_balance"
)

var logLevel = "info"

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})

	return nil
}

func handleCmdError(err error) {
	switch {
	case energy_balance.IsInvalidInput(err):
		fmt.Fprintln(os.Stderr, "\nError: an input value is non-physical")
		fmt.Fprintln(os.Stderr, "Check the flag values (or the scenario file) against the units printed in --help.")
	case energy_balance.IsPhaseAssumptionViolated(err):
		fmt.Fprintln(os.Stderr, "\nError: the final state is not a two-phase mixture")
		fmt.Fprintln(os.Stderr, "The drum contents leave the saturation envelope at the requested final pressure.")
	case energy_balance.IsPropertyLookupFailure(err):
		fmt.Fprintln(os.Stderr, "\nError: the steam table could not resolve a requested state")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "energy_balance_calc",
		Short:        "energy_balance_calc evaluates worked thermodynamics energy-balance problems",
		Long: `energy_balance_calc evaluates two classic first-law energy balances:

  tankless  electrical power of a tankless water heater at steady state
  drum      heat needed to raise a sealed vapor/liquid water drum between
            two saturation pressures

Water properties come from a built-in IAPWS-IF97 saturation table
covering 0.5 to 20 bar.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info",
		"log level (trace, debug, info, warn, error, fatal, panic)")

	cmd.AddCommand(
		NewTanklessCommand(),
		NewDrumCommand(),
	)

	return cmd
}
