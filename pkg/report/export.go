// Package report renders sweep results for humans: CSV and text exports,
// terminal charts, and heatmaps.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/oneflow1982/ktg/pkg/analysis"
	"github.com/oneflow1982/ktg/pkg/readiness"
)

// WriteSweepCSV writes the full per-point sweep data.
func WriteSweepCSV(w io.Writer, s *readiness.Sweep) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"historical_time_h", "ktg", "change_percent", "status"}); err != nil {
		return pkgerrors.Wrap(err, "failed to write csv header")
	}
	for i := range s.Times {
		rec := []string{
			strconv.FormatFloat(s.Times[i], 'f', 1, 64),
			strconv.FormatFloat(s.Values[i], 'f', 3, 64),
			strconv.FormatFloat(s.ChangePercent[i], 'f', 2, 64),
			analysis.Status(s.ChangePercent[i]),
		}
		if err := cw.Write(rec); err != nil {
			return pkgerrors.Wrap(err, "failed to write csv record")
		}
	}

	cw.Flush()
	return pkgerrors.Wrap(cw.Error(), "failed to flush csv")
}

// WriteSummaryCSV writes a single-row summary of parameters and headline
// statistics.
func WriteSummaryCSV(w io.Writer, p readiness.Params, sum analysis.Summary) error {
	cw := csv.NewWriter(w)

	header := []string{
		"baseline", "system_time_h", "t_min_h", "t_max_h",
		"mean_ktg", "max_ktg", "min_ktg", "max_improvement_percent",
	}
	row := []string{
		strconv.FormatFloat(p.Baseline, 'f', 2, 64),
		strconv.FormatFloat(p.SystemTime, 'f', 1, 64),
		strconv.FormatFloat(p.TMin, 'f', 1, 64),
		strconv.FormatFloat(p.TMax, 'f', 1, 64),
		strconv.FormatFloat(sum.Mean, 'f', 3, 64),
		strconv.FormatFloat(sum.Max, 'f', 3, 64),
		strconv.FormatFloat(sum.Min, 'f', 3, 64),
		strconv.FormatFloat(sum.MaxImprovementPercent, 'f', 1, 64),
	}

	if err := cw.Write(header); err != nil {
		return pkgerrors.Wrap(err, "failed to write csv header")
	}
	if err := cw.Write(row); err != nil {
		return pkgerrors.Wrap(err, "failed to write csv record")
	}

	cw.Flush()
	return pkgerrors.Wrap(cw.Error(), "failed to flush csv")
}

// Text renders the free-text report: parameters, headline results, and
// recommendations.
func Text(p readiness.Params, sum analysis.Summary, rec analysis.Recommendation) string {
	var sb strings.Builder

	sb.WriteString("# KTG calculation report\n\n")

	sb.WriteString("## Parameters\n")
	fmt.Fprintf(&sb, "- baseline KTG: %.2f\n", p.Baseline)
	fmt.Fprintf(&sb, "- system recovery time: %.1f h\n", p.SystemTime)
	fmt.Fprintf(&sb, "- analysis range: %.1f - %.1f h\n\n", p.TMin, p.TMax)

	sb.WriteString("## Results\n")
	fmt.Fprintf(&sb, "- mean KTG: %.3f\n", sum.Mean)
	fmt.Fprintf(&sb, "- max KTG: %.3f\n", sum.Max)
	fmt.Fprintf(&sb, "- min KTG: %.3f\n", sum.Min)
	fmt.Fprintf(&sb, "- max improvement: %.1f%%\n", sum.MaxImprovementPercent)
	if sum.ReachesFull {
		fmt.Fprintf(&sb, "- reaches full readiness at historical times up to %.1f h\n", sum.FullAtTime)
	}
	sb.WriteString("\n")

	sb.WriteString("## Recommendations\n")
	fmt.Fprintf(&sb, "Situation: %s. Planned repair time: %s.\n", rec.Situation, rec.SystemTimeVerdict)
	for _, a := range rec.Actions {
		fmt.Fprintf(&sb, "- %s\n", a)
	}

	return sb.String()
}

// Filename builds a deterministic export filename that embeds the
// parameters, e.g. "ktg_sweep_b0.05_ts2.0.csv".
func Filename(kind, ext string, p readiness.Params) string {
	return fmt.Sprintf("ktg_%s_b%.2f_ts%.1f.%s", kind, p.Baseline, p.SystemTime, ext)
}
