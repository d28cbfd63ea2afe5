package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oneflow1982/ktg/pkg/analysis"
	"github.com/oneflow1982/ktg/pkg/readiness"
	"github.com/oneflow1982/ktg/pkg/report"
)

func NewExportCommand() *cobra.Command {
	var (
		flagParams readiness.Params
		outputDir  string
		remote     bool
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export sweep data, summary, report, and chart to files",
		GroupID: gBasic,
		Long: `Export the sweep as CSV (full data and one-row summary), the free-text
report, and the rendered chart into the output directory. Filenames embed the
parameters so repeated exports do not overwrite each other.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := resolveParams(cmd, flagParams)
			if err != nil {
				return err
			}

			var (
				s          *readiness.Sweep
				sum        analysis.Summary
				rec        analysis.Recommendation
				reportText string
			)
			if remote {
				res, err := apiClient.Analysis(p)
				if err != nil {
					return fmt.Errorf("failed to analyze: %w", err)
				}
				s = res.Sweep
				sum = res.Summary
				reportText, err = apiClient.Report(p)
				if err != nil {
					return fmt.Errorf("failed to fetch report: %w", err)
				}
			} else {
				var err error
				s, err = readiness.GenerateSweep(p.Baseline, p.SystemTime, p.TMin, p.TMax)
				if err != nil {
					return fmt.Errorf("failed to generate sweep: %w", err)
				}
				sum = analysis.Summarize(s, p.Baseline)
				rec = analysis.Recommend(p.Baseline, p.SystemTime)
				reportText = report.Text(p, sum, rec)
			}

			writers := []struct {
				name  string
				write func(*os.File) error
			}{
				{report.Filename("sweep", "csv", p), func(f *os.File) error {
					return report.WriteSweepCSV(f, s)
				}},
				{report.Filename("summary", "csv", p), func(f *os.File) error {
					return report.WriteSummaryCSV(f, p, sum)
				}},
				{report.Filename("report", "txt", p), func(f *os.File) error {
					_, err := f.WriteString(reportText)
					return err
				}},
				{report.Filename("chart", "txt", p), func(f *os.File) error {
					_, err := f.WriteString(report.Chart(s, p.Baseline, 100, 16) + "\n")
					return err
				}},
			}

			for _, w := range writers {
				path := filepath.Join(outputDir, w.name)
				if err := writeFile(path, w.write); err != nil {
					return err
				}
				logrus.Infof("wrote %s", path)
			}

			return nil
		},
	}

	paramFlags(cmd, &flagParams)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory to write exports into")
	cmd.Flags().BoolVar(&remote, "remote", false, "fetch data and report through the ktg daemon")

	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Warnf("failed to close file %s", path)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
