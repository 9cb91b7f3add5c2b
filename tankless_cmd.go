package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"energy_balance_calc/energy_balance"
)

func NewTanklessCommand() *cobra.Command {
	// flag defaults are the worked textbook problem
	in := energy_balance.TanklessHeaterInput{
		InletTemperature:  45.0,
		OutletTemperature: 105.0,
		FlowRate:          2.5,
		Density:           1.0,
		HeatCapacity:      4.1866,
		Efficiency:        0.9,
	}
	var configPath string

	cmd := &cobra.Command{
		Use:   "tankless",
		Short: "Electrical power of a tankless water heater",
		Long: `Compute the steady-state electrical power a tankless water heater draws
to lift a water stream between two temperatures:

  power = mass_flow * Cp * dT / efficiency

Defaults reproduce the worked problem: 45 F to 105 F at 2.5 gal/min with
a thermal efficiency of 0.9.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := applyTanklessConfig(configPath, &in, cmd.Flags()); err != nil {
					return err
				}
			}

			logrus.Debugf("tankless input: %+v", in)

			res, err := energy_balance.CalcTanklessHeater(in)
			if err != nil {
				return err
			}

			fmt.Printf("temperature rise:  %8.3f degree C\n", res.DeltaT)
			fmt.Printf("mass flow rate:    %8.5f kg/s\n", res.MassFlow)
			fmt.Printf("heat duty:         %8.3f kW\n", res.HeatDuty)
			fmt.Printf("electrical power:  %8.3f kW\n", res.Power)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&in.InletTemperature, "inlet-temperature", in.InletTemperature, "inlet water temperature, degree F")
	flags.Float64Var(&in.OutletTemperature, "outlet-temperature", in.OutletTemperature, "outlet water temperature, degree F")
	flags.Float64Var(&in.FlowRate, "flow-rate", in.FlowRate, "volumetric flow rate, gal/min")
	flags.Float64Var(&in.Density, "density", in.Density, "water density, kg/L")
	flags.Float64Var(&in.HeatCapacity, "heat-capacity", in.HeatCapacity, "constant-pressure heat capacity, kJ/(kg K)")
	flags.Float64Var(&in.Efficiency, "efficiency", in.Efficiency, "thermal efficiency, (0, 1]")
	flags.StringVar(&configPath, "config", "", "INI scenario file (explicit flags still win)")

	return cmd
}
