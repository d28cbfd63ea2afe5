package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oneflow1982/ktg/pkg/readiness"
)

func NewComputeCommand() *cobra.Command {
	remote := false

	cmd := &cobra.Command{
		Use:     "compute BASELINE SYSTEM-TIME HISTORICAL-TIME",
		Short:   "Compute a single readiness coefficient",
		GroupID: gBasic,
		Long: `Compute a single readiness coefficient.

BASELINE is the current coefficient (0.01 to 1), SYSTEM-TIME the planned
repair duration in hours, HISTORICAL-TIME the repair duration under the old
regime in hours. The result is clamped to [0.01, 1].`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseline, err := parseFloatArg(args, 0, "baseline")
			if err != nil {
				return err
			}
			systemTime, err := parseFloatArg(args, 1, "system time")
			if err != nil {
				return err
			}
			historicalTime, err := parseFloatArg(args, 2, "historical time")
			if err != nil {
				return err
			}

			var v float64
			if remote {
				v, err = apiClient.Compute(baseline, systemTime, historicalTime)
			} else {
				v, err = readiness.Compute(baseline, systemTime, historicalTime)
			}
			if err != nil {
				return fmt.Errorf("failed to compute readiness coefficient: %w", err)
			}

			cmd.Println(bold("%.3f", v))
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "compute through the ktg daemon instead of locally")

	return cmd
}
