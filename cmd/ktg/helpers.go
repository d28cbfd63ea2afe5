package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oneflow1982/ktg/pkg/config"
	"github.com/oneflow1982/ktg/pkg/readiness"
)

func bold(format string, a ...any) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

func parseFloatArg(args []string, i int, valueName string) (float64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing %s argument", valueName)
	}

	value, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", valueName, err)
	}

	return value, nil
}

// paramFlags registers the shared calculation flags on a command.
func paramFlags(cmd *cobra.Command, p *readiness.Params) {
	f := cmd.Flags()
	f.Float64VarP(&p.Baseline, "baseline", "b", 0, "baseline readiness coefficient (default from config)")
	f.Float64VarP(&p.SystemTime, "system-time", "s", 0, "planned repair time after rollout, hours (default from config)")
	f.Float64Var(&p.TMin, "t-min", 0, "lower historical time bound, hours (default from config)")
	f.Float64Var(&p.TMax, "t-max", 0, "upper historical time bound, hours (default from config)")
}

// resolveParams fills unset calculation flags from the config file.
func resolveParams(cmd *cobra.Command, p readiness.Params) (readiness.Params, error) {
	conf, err := config.NewFile(configPath)
	if err != nil {
		return readiness.Params{}, err
	}
	resolved := conf.Params()

	if cmd.Flags().Changed("baseline") {
		resolved.Baseline = p.Baseline
	}
	if cmd.Flags().Changed("system-time") {
		resolved.SystemTime = p.SystemTime
	}
	if cmd.Flags().Changed("t-min") {
		resolved.TMin = p.TMin
	}
	if cmd.Flags().Changed("t-max") {
		resolved.TMax = p.TMax
	}

	return resolved, nil
}
