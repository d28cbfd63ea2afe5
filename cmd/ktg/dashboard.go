package main

import (
	"github.com/spf13/cobra"

	"github.com/oneflow1982/ktg/pkg/readiness"
	"github.com/oneflow1982/ktg/pkg/tui"
)

func NewDashboardCommand() *cobra.Command {
	var flagParams readiness.Params

	cmd := &cobra.Command{
		Use:     "dashboard",
		Short:   "Open the interactive terminal dashboard",
		GroupID: gBasic,
		Long: `Open the interactive terminal dashboard with chart, table, and analysis
views. Parameters can be adjusted live; every change recomputes the sweep.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := resolveParams(cmd, flagParams)
			if err != nil {
				return err
			}
			return tui.Run(p)
		},
	}

	paramFlags(cmd, &flagParams)

	return cmd
}
