package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func NewConfigCommand() *cobra.Command {
	var (
		baseline   float64
		systemTime float64
		tMin       float64
		tMax       float64
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show or update the daemon's stored defaults",
		GroupID: gAdvanced,
		Long: `Show or update the defaults stored by the running ktg daemon.

Without flags, print the stored configuration. With flags, update the matching
values; the daemon persists them to its config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			updated := false

			if f.Changed("baseline") {
				msg, err := apiClient.SetBaseline(baseline)
				if err != nil {
					return err
				}
				cmd.Println(msg)
				updated = true
			}
			if f.Changed("system-time") {
				msg, err := apiClient.SetSystemTime(systemTime)
				if err != nil {
					return err
				}
				cmd.Println(msg)
				updated = true
			}
			if f.Changed("t-min") != f.Changed("t-max") {
				return errors.New("changing the range requires both --t-min and --t-max")
			}
			if f.Changed("t-min") {
				msg, err := apiClient.SetRange(tMin, tMax)
				if err != nil {
					return err
				}
				cmd.Println(msg)
				updated = true
			}
			if updated {
				return nil
			}

			conf, err := apiClient.GetConfig()
			if err != nil {
				return err
			}

			cmd.Println(bold("Stored defaults:"))
			if conf.Baseline != nil {
				cmd.Printf("  baseline:    %.2f\n", *conf.Baseline)
			}
			if conf.SystemTime != nil {
				cmd.Printf("  system time: %.1f h\n", *conf.SystemTime)
			}
			if conf.TMin != nil && conf.TMax != nil {
				cmd.Printf("  range:       %.1f-%.1f h\n", *conf.TMin, *conf.TMax)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&baseline, "baseline", "b", 0, "baseline readiness coefficient to store")
	f.Float64VarP(&systemTime, "system-time", "s", 0, "planned repair time to store, hours")
	f.Float64Var(&tMin, "t-min", 0, "lower historical time bound to store, hours")
	f.Float64Var(&tMax, "t-max", 0, "upper historical time bound to store, hours")

	return cmd
}
