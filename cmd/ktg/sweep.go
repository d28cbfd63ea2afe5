package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oneflow1982/ktg/pkg/analysis"
	"github.com/oneflow1982/ktg/pkg/readiness"
	"github.com/oneflow1982/ktg/pkg/report"
)

func NewSweepCommand() *cobra.Command {
	var (
		flagParams readiness.Params
		jsonOut    bool
		chartOut   bool
		remote     bool
	)

	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "Sweep the readiness coefficient over a historical-time range",
		GroupID: gBasic,
		Long: `Sweep the readiness coefficient over a range of historical repair times
in 0.5 h steps and print the result as a table, chart, or JSON.

Parameters default to the stored configuration; flags override per run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := resolveParams(cmd, flagParams)
			if err != nil {
				return err
			}

			var s *readiness.Sweep
			if remote {
				s, err = apiClient.Sweep(p)
			} else {
				s, err = readiness.GenerateSweep(p.Baseline, p.SystemTime, p.TMin, p.TMax)
			}
			if err != nil {
				return fmt.Errorf("failed to generate sweep: %w", err)
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}

			if chartOut {
				cmd.Println(report.Chart(s, p.Baseline, 80, 12))
				return nil
			}

			printSweepTable(cmd, s)
			return nil
		},
	}

	paramFlags(cmd, &flagParams)
	f := cmd.Flags()
	f.BoolVar(&jsonOut, "json", false, "print the sweep as JSON")
	f.BoolVar(&chartOut, "chart", false, "print the sweep as a terminal chart")
	f.BoolVar(&remote, "remote", false, "compute through the ktg daemon instead of locally")

	return cmd
}

func printSweepTable(cmd *cobra.Command, s *readiness.Sweep) {
	cmd.Println(bold("%10s  %8s  %10s  %s", "t_hist (h)", "KTG", "change %", "status"))

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for i := range s.Times {
		status := analysis.Status(s.ChangePercent[i])
		colored := green(status)
		if status == "degradation" {
			colored = red(status)
		}
		cmd.Printf("%10.1f  %8.3f  %10.2f  %s\n", s.Times[i], s.Values[i], s.ChangePercent[i], colored)
	}
}
