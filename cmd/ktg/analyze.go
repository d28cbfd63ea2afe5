package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oneflow1982/ktg/pkg/analysis"
	"github.com/oneflow1982/ktg/pkg/readiness"
	"github.com/oneflow1982/ktg/pkg/report"
)

func NewAnalyzeCommand() *cobra.Command {
	var (
		flagParams readiness.Params
		noHeatmap  bool
		remote     bool
	)

	cmd := &cobra.Command{
		Use:     "analyze",
		Short:   "Analyze the effect of the maintenance system",
		GroupID: gBasic,
		Long: `Analyze the effect of the maintenance system over the configured range:
summary statistics, key points, an efficiency rating, recommendations, and a
heatmap of the two-dimensional sweep.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := resolveParams(cmd, flagParams)
			if err != nil {
				return err
			}

			var (
				sum    analysis.Summary
				points []analysis.KeyPoint
				rating analysis.Rating
				rec    analysis.Recommendation
			)
			if remote {
				res, err := apiClient.Analysis(p)
				if err != nil {
					return fmt.Errorf("failed to analyze: %w", err)
				}
				sum = res.Summary
				points = res.KeyPoints
				rating = res.Rating
				rec = res.Advice
			} else {
				s, err := readiness.GenerateSweep(p.Baseline, p.SystemTime, p.TMin, p.TMax)
				if err != nil {
					return fmt.Errorf("failed to generate sweep: %w", err)
				}
				sum = analysis.Summarize(s, p.Baseline)
				points = analysis.KeyPoints(s)
				rating = analysis.Rate(sum.MaxImprovementPercent)
				rec = analysis.Recommend(p.Baseline, p.SystemTime)
			}

			cmd.Println(bold("Parameters:"))
			cmd.Printf("  baseline %.2f, system time %.1f h, range %.1f-%.1f h\n\n", p.Baseline, p.SystemTime, p.TMin, p.TMax)

			cmd.Println(bold("Summary:"))
			cmd.Printf("  mean KTG: %.3f\n", sum.Mean)
			cmd.Printf("  min  KTG: %.3f\n", sum.Min)
			cmd.Printf("  max  KTG: %.3f\n", sum.Max)
			cmd.Printf("  max improvement: %+.1f%% (%s efficiency)\n", sum.MaxImprovementPercent, rating)
			if sum.ReachesFull {
				cmd.Printf("  reaches full readiness at historical times up to %.1f h\n", sum.FullAtTime)
			}
			cmd.Println()

			if len(points) > 0 {
				cmd.Println(bold("Key points:"))
				for _, kp := range points {
					cmd.Printf("  %4.0f h: %.3f (%+.1f%%)\n", kp.Mark, kp.Value, kp.ChangePercent)
				}
				cmd.Println()
			}

			cmd.Println(bold("Recommendations:"))
			cmd.Printf("  situation: %s, planned repair time: %s\n", rec.Situation, rec.SystemTimeVerdict)
			for _, a := range rec.Actions {
				cmd.Printf("  - %s\n", a)
			}

			if !noHeatmap {
				var g *readiness.Grid
				if remote {
					g, err = apiClient.Grid(p)
				} else {
					g, err = readiness.GenerateGrid(p.Baseline, p.TMin, p.TMax)
				}
				if err != nil {
					return fmt.Errorf("failed to generate grid: %w", err)
				}
				cmd.Println()
				cmd.Println(report.Heatmap(g))
			}

			return nil
		},
	}

	paramFlags(cmd, &flagParams)
	cmd.Flags().BoolVar(&noHeatmap, "no-heatmap", false, "skip the two-dimensional heatmap")
	cmd.Flags().BoolVar(&remote, "remote", false, "analyze through the ktg daemon instead of locally")

	return cmd
}
